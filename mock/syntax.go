package mock

import "github.com/fwojciec/diffstyle"

// Compile-time interface verification.
var _ diffstyle.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of diffstyle.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
	LanguagesFn      func() []string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

func (d *LanguageDetector) Languages() []string {
	return d.LanguagesFn()
}
