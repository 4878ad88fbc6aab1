package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	codePrefix     = "INV"
	codeAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeSuffixSize = 6
)

// CodeGenerator produces human-readable transaction codes of the form
// INV-YYYYMMDD-XXXXXX. Codes are not guaranteed globally unique; the ledger
// row id is the durable key and collisions surface as a unique-index error
// that rolls the transition back.
type CodeGenerator interface {
	Next(now time.Time) string
}

type randCodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCodeGenerator() CodeGenerator {
	return NewSeededCodeGenerator(time.Now().UnixNano())
}

// NewSeededCodeGenerator makes code sequences reproducible for tests.
func NewSeededCodeGenerator(seed int64) CodeGenerator {
	return &randCodeGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *randCodeGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var suffix strings.Builder
	suffix.Grow(codeSuffixSize)
	for i := 0; i < codeSuffixSize; i++ {
		suffix.WriteByte(codeAlphabet[g.rnd.Intn(len(codeAlphabet))])
	}

	return codePrefix + "-" + now.Format("20060102") + "-" + suffix.String()
}
