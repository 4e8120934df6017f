package session

import (
	"context"
	"testing"

	"github.com/alexedwards/scs/v2"

	"inhome/internal/domain"
)

func sessionContext(t *testing.T, sm *scs.SessionManager) context.Context {
	t.Helper()
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return ctx
}

func TestStore_RoundTrip(t *testing.T) {
	sm := scs.New()
	store := NewStore(sm)
	ctx := sessionContext(t, sm)

	user := &domain.User{ID: "u1", Name: "Sara", Email: "sara@example.com", Role: "superadmin"}
	if err := store.Save(ctx, "tok-1", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, got := store.Load(ctx)
	if token != "tok-1" {
		t.Errorf("token = %q; want tok-1", token)
	}
	if got == nil || *got != *user {
		t.Errorf("user = %+v; want %+v", got, user)
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	sm := scs.New()
	store := NewStore(sm)
	ctx := sessionContext(t, sm)

	token, user := store.Load(ctx)
	if token != "" || user != nil {
		t.Errorf("Load on fresh session = (%q, %+v); want empty", token, user)
	}
}

func TestStore_CorruptUserLoadsAsAbsent(t *testing.T) {
	sm := scs.New()
	store := NewStore(sm)
	ctx := sessionContext(t, sm)

	sm.Put(ctx, keyToken, "tok-2")
	sm.Put(ctx, keyUser, []byte("{not json"))

	token, user := store.Load(ctx)
	if token != "tok-2" {
		t.Errorf("token = %q; want tok-2", token)
	}
	if user != nil {
		t.Errorf("corrupt cached user should load as absent, got %+v", user)
	}
}

func TestStore_Clear(t *testing.T) {
	sm := scs.New()
	store := NewStore(sm)
	ctx := sessionContext(t, sm)

	if err := store.Save(ctx, "tok-3", &domain.User{ID: "u3"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	token, user := store.Load(ctx)
	if token != "" || user != nil {
		t.Errorf("Load after Clear = (%q, %+v); want empty", token, user)
	}
}

func TestStore_PersistsAcrossLoads(t *testing.T) {
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sm := NewManager(db, true)
	store := NewStore(sm)

	ctx := sessionContext(t, sm)
	if err := store.Save(ctx, "tok-4", &domain.User{ID: "u4", Role: "admin"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, _, err := sm.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	// A second load with the committed token simulates a later request
	// after a restart: the credential pair must still be there.
	ctx2, err := sm.Load(context.Background(), token)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	gotToken, user := store.Load(ctx2)
	if gotToken != "tok-4" {
		t.Errorf("token = %q; want tok-4", gotToken)
	}
	if user == nil || user.ID != "u4" {
		t.Errorf("user = %+v; want u4", user)
	}
}

func TestNewManager_Settings(t *testing.T) {
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sm := NewManager(db, true)
	if sm.Cookie.Secure {
		t.Error("expected insecure cookie in dev mode")
	}
	if !sm.Cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}

	sm = NewManager(db, false)
	if !sm.Cookie.Secure {
		t.Error("expected secure cookie in production mode")
	}
}
