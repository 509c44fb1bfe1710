package sanitizer

import "radar/pkg/model"

func ClampScore(score int) int {
	if score < model.MinScore {
		return model.MinScore
	}
	if score > model.MaxScore {
		return model.MaxScore
	}
	return score
}
