package passgen

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	all := NewClassSet(AllClasses...)

	tests := []struct {
		name    string
		req     Request
		wantLen int
		wantErr error
	}{
		{
			name:    "default request",
			req:     DefaultRequest(),
			wantLen: 16,
		},
		{
			name:    "all classes length 12",
			req:     Request{Length: 12, Classes: all},
			wantLen: 12,
		},
		{
			name:    "uppercase only",
			req:     Request{Length: 16, Classes: NewClassSet(Uppercase)},
			wantLen: 16,
		},
		{
			name:    "length equals class count",
			req:     Request{Length: 4, Classes: all},
			wantLen: 4,
		},
		{
			name:    "length below class count grows to class count",
			req:     Request{Length: 2, Classes: all},
			wantLen: 4,
		},
		{
			name:    "zero length keeps one character per class",
			req:     Request{Length: 0, Classes: NewClassSet(Digit, Symbol)},
			wantLen: 2,
		},
		{
			name:    "negative length keeps one character per class",
			req:     Request{Length: -5, Classes: NewClassSet(Lowercase)},
			wantLen: 1,
		},
		{
			name:    "no classes",
			req:     Request{Length: 16},
			wantErr: ErrNoCharacterClasses,
		},
		{
			name:    "no classes with zero length",
			req:     Request{Length: 0},
			wantErr: ErrNoCharacterClasses,
		},
	}

	b := NewBuilder(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := b.Generate(tt.req)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.wantLen {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.wantLen)
			}
		})
	}
}

func TestGenerateContainsEveryEnabledClass(t *testing.T) {
	sets := []ClassSet{
		NewClassSet(AllClasses...),
		NewClassSet(Uppercase, Digit),
		NewClassSet(Lowercase, Symbol),
		NewClassSet(Uppercase, Lowercase, Digit),
	}

	b := NewBuilder(nil)
	for _, set := range sets {
		// Short lengths are where a missing class would show up.
		for length := 1; length <= 12; length++ {
			for i := 0; i < 20; i++ {
				password, err := b.Generate(Request{Length: length, Classes: set})
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				for _, c := range set.Classes() {
					if !strings.ContainsAny(password, c.Alphabet()) {
						t.Errorf("password %q missing %s character", password, c)
					}
				}
			}
		}
	}
}

func TestGenerateSingleClassContainsOnlyThatClass(t *testing.T) {
	b := NewBuilder(nil)
	for _, c := range AllClasses {
		t.Run(c.String(), func(t *testing.T) {
			password, err := b.Generate(Request{Length: 32, Classes: NewClassSet(c)})
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(c.Alphabet(), ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), c.Alphabet())
				}
			}
		})
	}
}

func TestGenerateDrawsOnlyFromEnabledClasses(t *testing.T) {
	b := NewBuilder(nil)
	set := NewClassSet(Lowercase, Digit)
	allowed := lowercaseChars + digitChars

	for i := 0; i < 50; i++ {
		password, err := b.Generate(Request{Length: 24, Classes: set})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, uppercaseChars+symbolChars) {
			t.Fatalf("password %q contains characters outside %q", password, allowed)
		}
	}
}

func TestGenerateSeededSourceIsDeterministic(t *testing.T) {
	req := Request{Length: 20, Classes: NewClassSet(AllClasses...)}

	first, err := NewBuilder(SeededSource(42)).Generate(req)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	second, err := NewBuilder(SeededSource(42)).Generate(req)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}

func TestGenerateCryptoSource(t *testing.T) {
	password, err := NewBuilder(CryptoSource()).Generate(Request{Length: 12, Classes: NewClassSet(AllClasses...)})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 12 {
		t.Errorf("Generate() length = %d, want 12", len(password))
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(16, NewClassSet(AllClasses...))
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

// fixedSource returns queued values in order and 0 once drained.
type fixedSource struct {
	values []int
}

func (f *fixedSource) IntN(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v % n
}

func TestGenerateShufflesSeededCharacters(t *testing.T) {
	// Seeds pick 'A' and 'a'; the shuffle draw for i=1 is 0, swapping them.
	src := &fixedSource{values: []int{0, 0, 0}}
	password, err := NewBuilder(src).Generate(Request{Length: 2, Classes: NewClassSet(Uppercase, Lowercase)})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "aA" {
		t.Errorf("Generate() = %q, want %q", password, "aA")
	}
}

func TestSourceByName(t *testing.T) {
	if _, ok := SourceByName("crypto").(cryptoSource); !ok {
		t.Error("SourceByName(crypto) should return the crypto source")
	}
	for _, name := range []string{"math", "", "other"} {
		if _, ok := SourceByName(name).(mathSource); !ok {
			t.Errorf("SourceByName(%q) should return the math source", name)
		}
	}
}

func TestGenerateFillIndexesPoolInClassOrder(t *testing.T) {
	tests := []struct {
		name    string
		classes ClassSet
		length  int
		draws   []int
		want    string
	}{
		{
			// Seeds 'A' and 'a'; pool index 27 lands on 'b' only when
			// uppercase precedes lowercase. Shuffle draws j=i keep order.
			name:    "uppercase then lowercase",
			classes: NewClassSet(Lowercase, Uppercase),
			length:  3,
			draws:   []int{0, 0, 27, 2, 1},
			want:    "Aab",
		},
		{
			// Pool index 61 is the last digit and 62 the first symbol.
			name:    "all classes",
			classes: NewClassSet(AllClasses...),
			length:  6,
			draws:   []int{0, 0, 0, 0, 61, 62, 5, 4, 3, 2, 1},
			want:    "Aa0!9!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fixedSource{values: tt.draws}
			password, err := NewBuilder(src).Generate(Request{Length: tt.length, Classes: tt.classes})
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if password != tt.want {
				t.Errorf("Generate() = %q, want %q", password, tt.want)
			}
		})
	}
}
