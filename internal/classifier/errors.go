package classifier

import "fmt"

// TrainingError reports a training set the forest cannot be fitted on.
type TrainingError struct {
	Reason string
}

func (e *TrainingError) Error() string {
	return "cannot train model: " + e.Reason
}

// InferenceError reports a feature vector that does not match the shape the
// model was trained on.
type InferenceError struct {
	Expected int
	Got      int
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("feature vector has %d features, model expects %d", e.Got, e.Expected)
}

// ArtifactError reports a model artifact that cannot be loaded.
type ArtifactError struct {
	Path    string
	Message string
	Hint    string
}

func (e *ArtifactError) Error() string {
	msg := fmt.Sprintf("invalid model artifact: %s\n%s", e.Path, e.Message)
	if e.Hint != "" {
		msg += "\n💡 " + e.Hint
	}
	return msg
}
