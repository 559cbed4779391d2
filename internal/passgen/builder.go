package passgen

import "errors"

// ErrNoCharacterClasses is returned when a request enables no class.
var ErrNoCharacterClasses = errors.New("at least one character type must be selected")

// Request describes a single password to build.
type Request struct {
	Length  int
	Classes ClassSet
}

// DefaultRequest returns 16 characters with every class enabled.
func DefaultRequest() Request {
	return Request{
		Length:  16,
		Classes: NewClassSet(AllClasses...),
	}
}

// Builder produces passwords from a random Source. A Builder holds no other
// state, so one value can serve concurrent callers when its Source can.
type Builder struct {
	src Source
}

// NewBuilder creates a Builder. A nil src selects MathSource.
func NewBuilder(src Source) *Builder {
	if src == nil {
		src = MathSource()
	}
	return &Builder{src: src}
}

// Generate builds a password containing at least one character from every
// enabled class. When req.Length is smaller than the number of enabled
// classes the result is one character per class, longer than requested.
func (b *Builder) Generate(req Request) (string, error) {
	if req.Classes.Empty() {
		return "", ErrNoCharacterClasses
	}

	classes := req.Classes.Classes()

	var pool string
	for _, c := range classes {
		pool += c.Alphabet()
	}

	size := len(classes)
	if req.Length > size {
		size = req.Length
	}
	result := make([]byte, 0, size)

	// One guaranteed character per class, in fixed class order.
	for _, c := range classes {
		result = append(result, b.pick(c.Alphabet()))
	}

	for i := len(classes); i < req.Length; i++ {
		result = append(result, b.pick(pool))
	}

	b.shuffle(result)

	return string(result), nil
}

func (b *Builder) pick(charset string) byte {
	return charset[b.src.IntN(len(charset))]
}

// shuffle is a Fisher-Yates shuffle.
func (b *Builder) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := b.src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}

var defaultBuilder = NewBuilder(nil)

// Generate builds a password with the default non-cryptographic source.
func Generate(length int, classes ClassSet) (string, error) {
	return defaultBuilder.Generate(Request{Length: length, Classes: classes})
}
