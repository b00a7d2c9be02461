package vocab

import (
	"reflect"
	"strings"
	"testing"

	"vocabtools/vocabcmp/pkg/diag"
)

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "clean vocabulary",
			tokens: []string{"the", "cat", "##ing", "##s"},
			want:   nil,
		},
		{
			name:   "interior punctuation is multi-piece",
			tokens: []string{"the", "can't", "cat"},
			want:   []string{"can't"},
		},
		{
			name:   "continuation marker is stripped before checking",
			tokens: []string{"##ing", "##n't"},
			want:   []string{"##n't"},
		},
		{
			name:   "interior whitespace is multi-piece",
			tokens: []string{"new york"},
			want:   []string{"new york"},
		},
		{
			name:   "multiple offenders reported in source order",
			tokens: []string{"a.b", "fine", "x,y"},
			want:   []string{"a.b", "x,y"},
		},
	}

	checker := Checker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &diag.Recorder{}
			v := &Vocabulary{Name: "v.txt", Tokens: tt.tokens}

			got := checker.Check(v, rec)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Check = %v, want %v", got, tt.want)
			}

			warnings := rec.Warnings()
			if len(tt.want) == 0 {
				if len(warnings) != 0 {
					t.Errorf("unexpected warnings for clean vocabulary: %v", warnings)
				}
				return
			}

			if len(warnings) != 1 {
				t.Fatalf("expected exactly 1 warning, got %d: %v", len(warnings), warnings)
			}
			if !strings.Contains(warnings[0], "v.txt") {
				t.Errorf("warning %q does not name the vocabulary", warnings[0])
			}
			for _, offender := range tt.want {
				if !strings.Contains(warnings[0], offender) {
					t.Errorf("warning %q does not list offender %q", warnings[0], offender)
				}
			}
		})
	}
}

func TestChecker_CustomMarker(t *testing.T) {
	checker := Checker{ContinuationMarker: "@@"}
	rec := &diag.Recorder{}

	// With marker "@@", "##x.y" keeps its "##" prefix and tokenizes into
	// multiple pieces; "@@clean" is stripped and passes.
	v := &Vocabulary{Name: "v.txt", Tokens: []string{"@@clean", "##xy"}}
	got := checker.Check(v, rec)

	want := []string{"##xy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check = %v, want %v", got, want)
	}
}

func TestChecker_DoesNotAffectVocabulary(t *testing.T) {
	checker := Checker{}
	rec := &diag.Recorder{}
	v := &Vocabulary{Name: "v.txt", Tokens: []string{"a.b", "ok"}}

	checker.Check(v, rec)

	if want := []string{"a.b", "ok"}; !reflect.DeepEqual(v.Tokens, want) {
		t.Errorf("vocabulary was mutated: %v", v.Tokens)
	}
}
