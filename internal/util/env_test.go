package util

import (
	"reflect"
	"testing"
)

func TestGetEnvFirst(t *testing.T) {
	t.Setenv("AI_CHAT_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if got := GetEnvFirst("AI_CHAT_KEY", "OPENAI_API_KEY"); got != "sk-test" {
		t.Fatalf("GetEnvFirst() = %q, want sk-test", got)
	}

	t.Setenv("AI_CHAT_KEY", "primary")
	if got := GetEnvFirst("AI_CHAT_KEY", "OPENAI_API_KEY"); got != "primary" {
		t.Fatalf("GetEnvFirst() = %q, want primary", got)
	}
}

func TestGetEnvNumericAndBool(t *testing.T) {
	t.Setenv("AI_PARALLEL_REQ", "4")
	t.Setenv("AI_TIMEOUT_SECONDS", "soon")
	t.Setenv("DEBUG", "yes")

	if got := GetEnvNumeric("AI_PARALLEL_REQ", 15); got != 4 {
		t.Fatalf("GetEnvNumeric() = %v, want 4", got)
	}
	if got := GetEnvNumeric("AI_TIMEOUT_SECONDS", 0); got != 0 {
		t.Fatalf("GetEnvNumeric() = %v, want default 0", got)
	}
	if got := GetEnvBool("DEBUG", false); got {
		t.Fatal("GetEnvBool() should fall back to the default for non-boolean values")
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " http://localhost:3000, ,https://domino.example ")

	got := GetEnvList("CORS_ORIGINS", []string{"*"})
	want := []string{"http://localhost:3000", "https://domino.example"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetEnvList() = %v, want %v", got, want)
	}

	t.Setenv("CORS_ORIGINS", "")
	if got := GetEnvList("CORS_ORIGINS", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("GetEnvList() = %v, want default", got)
	}
}
