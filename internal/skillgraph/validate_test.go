package skillgraph

import (
	"strings"
	"testing"
)

func TestValidateSkills_SeedGraphPasses(t *testing.T) {
	if err := validateSkills(seedSkills()); err != nil {
		t.Fatalf("seed graph validation failed: %v", err)
	}
}

func TestValidateSkills_DetectsCycle(t *testing.T) {
	skills := []Skill{
		{ID: "root", Difficulty: Beginner},
		{ID: "a", Difficulty: Beginner, Prerequisites: []string{"b"}},
		{ID: "b", Difficulty: Beginner, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateSkills_DetectsDanglingPrereq(t *testing.T) {
	skills := []Skill{
		{ID: "a", Difficulty: Beginner},
		{ID: "b", Difficulty: Beginner, Prerequisites: []string{"nonexistent"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Difficulty: Beginner},
		{ID: "a", Difficulty: Advanced},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSkills_DetectsSelfLoop(t *testing.T) {
	skills := []Skill{
		{ID: "root", Difficulty: Beginner},
		{ID: "a", Difficulty: Beginner, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for self-loop, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self reference, got: %v", err)
	}
}

func TestValidateSkills_DetectsNoRoots(t *testing.T) {
	skills := []Skill{
		{ID: "a", Difficulty: Beginner, Prerequisites: []string{"b"}},
		{ID: "b", Difficulty: Beginner, Prerequisites: []string{"a"}},
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no root") {
		t.Errorf("error should mention missing roots, got: %v", err)
	}
}

func TestValidateSkills_DetectsBadDifficulty(t *testing.T) {
	skills := []Skill{{ID: "a", Difficulty: "expert"}}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for unknown difficulty, got nil")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("error should mention difficulty, got: %v", err)
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	_, err := New([]Skill{
		{ID: "x", Difficulty: Beginner},
		{ID: "y", Difficulty: Beginner, Prerequisites: []string{"z"}},
	})
	if err == nil {
		t.Fatal("expected New to reject dangling prerequisite")
	}
}
