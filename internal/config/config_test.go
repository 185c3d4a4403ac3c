package config

import "testing"

func TestLoad_RequiresMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when MONGO_URL is missing")
	}
}

func TestLoad_WithMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MongoURL != "mongodb://localhost:27017" {
		t.Errorf("expected MONGO_URL to be set, got %s", cfg.MongoURL)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}

	if cfg.DBName != "maternity_tracker" {
		t.Errorf("expected default db name 'maternity_tracker', got %s", cfg.DBName)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
