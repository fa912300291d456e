package mongo

import (
	"testing"

	"github.com/sun-min-kim/TaskManagementAPI/internal/infrastructure/config"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.MongoConfig{URI: "mongodb://db.internal:27017"})

	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("expected app name %q, got %v", appName, opts.AppName)
	}
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "db.internal:27017" {
		t.Fatalf("expected host from URI, got %v", opts.Hosts)
	}
}

func TestDatabaseName_DefaultsWhenUnset(t *testing.T) {
	if got := databaseName(config.MongoConfig{}); got != defaultDatabase {
		t.Fatalf("expected default database %q, got %q", defaultDatabase, got)
	}
	if got := databaseName(config.MongoConfig{Database: "other"}); got != "other" {
		t.Fatalf("expected configured database, got %q", got)
	}
}
