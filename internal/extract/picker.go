package extract

import "math/rand/v2"

// ModelPicker chooses the model ID for an extraction call.
type ModelPicker func() string

// RandomPicker picks uniformly from models using a seeded PCG source, so
// a pinned seed reproduces the same model sequence across runs.
func RandomPicker(models []string, seed uint64) ModelPicker {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() string {
		if len(models) == 0 {
			return ""
		}
		return models[rng.IntN(len(models))]
	}
}

// FixedPicker always returns the given model.
func FixedPicker(model string) ModelPicker {
	return func() string {
		return model
	}
}
