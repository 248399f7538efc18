package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAliasStoreEmptyDir(t *testing.T) {
	s := NewAliasStore(t.TempDir())

	aliases, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("List() = %v, want empty", aliases)
	}
}

func TestAliasStoreCreate(t *testing.T) {
	s := NewAliasStore(t.TempDir())

	alias, err := s.Create("ll", "ls -la", "long listing")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if alias.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if alias.Name != "ll" || alias.Command != "ls -la" || alias.Description != "long listing" {
		t.Errorf("Create() = %+v", alias)
	}

	got, err := s.GetByID(alias.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "ll" {
		t.Errorf("GetByID() = %+v", got)
	}
}

func TestAliasStoreDuplicateName(t *testing.T) {
	s := NewAliasStore(t.TempDir())

	if _, err := s.Create("ll", "ls -la", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("ll", "ls -l", ""); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Create() with taken name error = %v, want ErrDuplicateName", err)
	}
}

func TestAliasStoreUpdate(t *testing.T) {
	s := NewAliasStore(t.TempDir())

	first, err := s.Create("ll", "ls -la", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Create("gs", "git status", "")
	if err != nil {
		t.Fatal(err)
	}

	cmd := "ls -lah"
	got, err := s.Update(first.ID, AliasUpdate{Command: &cmd})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Command != "ls -lah" {
		t.Errorf("Command = %s, want ls -lah", got.Command)
	}
	if got.Name != "ll" {
		t.Errorf("partial update clobbered name: %+v", got)
	}

	// renaming onto another alias is rejected
	name := "gs"
	if _, err := s.Update(first.ID, AliasUpdate{Name: &name}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Update() rename collision error = %v, want ErrDuplicateName", err)
	}

	// keeping your own name is fine
	name = "gs"
	if _, err := s.Update(second.ID, AliasUpdate{Name: &name}); err != nil {
		t.Errorf("Update() with own name error = %v", err)
	}

	if _, err := s.Update("alias-0-deadbeef", AliasUpdate{Command: &cmd}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() on unknown id error = %v, want ErrNotFound", err)
	}
}

func TestAliasStoreDelete(t *testing.T) {
	s := NewAliasStore(t.TempDir())

	alias, err := s.Create("ll", "ls -la", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(alias.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(alias.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}

	// name is free again after delete
	if _, err := s.Create("ll", "ls -la", ""); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}

func TestAliasStoreListOrder(t *testing.T) {
	dir := t.TempDir()
	doc := `{"aliases":[
		{"id":"alias-1000-aaaaaaaa","name":"old","command":"true"},
		{"id":"alias-2000-bbbbbbbb","name":"new","command":"true"}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "aliases.json"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewAliasStore(dir)
	aliases, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(aliases) != 2 || aliases[0].Name != "new" || aliases[1].Name != "old" {
		t.Errorf("List() order = %+v, want newest first", aliases)
	}
}
