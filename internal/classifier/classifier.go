// Package classifier wraps the fallback fake-news model behind a small
// interface. The verdict service only calls it when the cache has no entry
// for a claim.
package classifier

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the underlying model could not be reached or
// returned an unusable response. Callers must surface it; there is no
// silent default verdict.
var ErrUnavailable = errors.New("classifier unavailable")

// Label is the classifier's binary output.
type Label string

const (
	LabelFake    Label = "Fake"
	LabelGenuine Label = "Genuine"
)

// Prediction is one classification of claim text.
type Prediction struct {
	Label      Label
	Confidence float64
}

// Classifier decides whether claim text reads as fabricated.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}
