package validator

import (
	"errors"
	"testing"

	"radar/pkg/logger"
	"radar/pkg/model"
)

func TestCriteriaValidator_Validate(t *testing.T) {
	v := NewCriteriaValidator(logger.Discard())

	tests := []struct {
		name          string
		criteria      model.FilterCriteria
		wantErr       bool
		expectedField string
	}{
		{name: "defaults", criteria: model.FilterCriteria{MinScore: 3}},
		{name: "bounds low", criteria: model.FilterCriteria{MinScore: 0}},
		{name: "bounds high", criteria: model.FilterCriteria{MinScore: 10, City: "Almenara", Neighborhood: "Centro"}},
		{name: "score too high", criteria: model.FilterCriteria{MinScore: 11}, wantErr: true, expectedField: "MinScore"},
		{name: "score negative", criteria: model.FilterCriteria{MinScore: -1}, wantErr: true, expectedField: "MinScore"},
		{name: "neighborhood without city", criteria: model.FilterCriteria{Neighborhood: "Centro"}, wantErr: true, expectedField: "Neighborhood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.criteria)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if _, ok := verrs.Details()[tt.expectedField]; !ok {
				t.Errorf("expected error on %s, got %v", tt.expectedField, verrs.Details())
			}
		})
	}
}
