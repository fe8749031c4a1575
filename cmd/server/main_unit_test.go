package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testVerificationKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestRunMainProcess_SuccessWithSeams(t *testing.T) {
	t.Setenv("PRIVY_APP_ID", "app-id")
	t.Setenv("PRIVY_VERIFICATION_KEY", testVerificationKeyPEM(t))
	t.Setenv("PRIVY_WEBHOOK_SIGNING_KEY", "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw")
	t.Setenv("PRICE_SYNC_ENABLED", "false")

	origInitRedis, origOpenDB, origRunServer := initRedis, openDB, runServer
	defer func() {
		initRedis, openDB, runServer = origInitRedis, origOpenDB, origRunServer
	}()

	initRedis = func(url, password string) error { return nil }
	openDB = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:mainunit?mode=memory&cache=shared"), &gorm.Config{})
	}

	var servedPort string
	runServer = func(r *gin.Engine, port string) error {
		servedPort = port
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("runMainProcess: %v", err)
	}
	if servedPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", servedPort)
	}
}

func TestRunMainProcess_FailsWithoutWebhookKey(t *testing.T) {
	t.Setenv("PRIVY_APP_ID", "app-id")
	t.Setenv("PRIVY_VERIFICATION_KEY", testVerificationKeyPEM(t))
	t.Setenv("PRIVY_WEBHOOK_SIGNING_KEY", "")

	origInitRedis, origOpenDB := initRedis, openDB
	defer func() {
		initRedis, openDB = origInitRedis, origOpenDB
	}()

	initRedis = func(url, password string) error { return nil }
	openDB = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:mainunit2?mode=memory&cache=shared"), &gorm.Config{})
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected startup failure without webhook signing key")
	}
}

func TestOpenDBSeam_InvalidDSN(t *testing.T) {
	db, err := openDB("host=127.0.0.1 port=1 dbname=x connect_timeout=1")
	if err != nil {
		return
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return
	}
	defer sqlDB.Close()
	if pingErr := sqlDB.Ping(); pingErr == nil {
		t.Skip("unexpected local postgres available")
	}
}
