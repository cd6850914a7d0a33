package fs

import (
	"runtime"
	"testing"
)

func setTempCfg(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func TestAuthFSStore_TokenRoundTrip(t *testing.T) {
	setTempCfg(t)
	store := AuthFSStore{}

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error before token is saved")
	}

	if err := store.Save("tok-1\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	tok, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// завершающие пробелы/переводы строки обрезаются
	if tok != "tok-1" {
		t.Fatalf("token mismatch: %q", tok)
	}
}

func TestAuthFSStore_UserRoundTrip(t *testing.T) {
	setTempCfg(t)
	store := AuthFSStore{}

	if _, err := store.LoadUser(); err == nil {
		t.Fatalf("expected error before the user is saved")
	}

	if err := store.SaveUser(UserContext{}); err == nil {
		t.Fatalf("empty user id must not be saved")
	}

	want := UserContext{ID: 42, Name: "Alice"}
	if err := store.SaveUser(want); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, err := store.LoadUser()
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if got != want {
		t.Fatalf("user mismatch: %+v", got)
	}
}

func TestAuthFSStore_Clear(t *testing.T) {
	setTempCfg(t)
	store := AuthFSStore{}

	// Clear на пустом хранилище не ошибается
	if err := store.Clear(); err != nil {
		t.Fatalf("clear empty: %v", err)
	}

	_ = store.Save("tok")
	_ = store.SaveUser(UserContext{ID: 1, Name: "x"})
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("token must be gone after clear")
	}
	if _, err := store.LoadUser(); err == nil {
		t.Fatalf("user must be gone after clear")
	}
}
