package normalizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"radar/pkg/model"
)

func TestNormalizeRow_CompleteRow(t *testing.T) {
	row := Row{
		ColumnName:                "Mercado Central",
		ColumnOwners:              "Maria Silva",
		ColumnCapital:             "150000",
		ColumnScore:               "7",
		ColumnCity:                "Almenara",
		ColumnNeighborhood:        "Centro",
		ColumnAddress:             "Rua A, 1234, Centro",
		ColumnPhones:              "(38) 91234-5678",
		ColumnMicroEntrepreneur:   "1",
		ColumnActivityDescription: "Comercio varejista",
	}

	want := model.Lead{
		Name:                "Mercado Central",
		OwnerNames:          "Maria Silva",
		Capital:             150000,
		Score:               7,
		City:                "Almenara",
		Neighborhood:        "Centro",
		Address:             "Rua A, 1234, Centro",
		Phones:              "(38) 91234-5678",
		IsMicroEntrepreneur: true,
		ActivityDescription: "Comercio varejista",
	}

	if diff := cmp.Diff(want, NormalizeRow(row)); diff != "" {
		t.Errorf("NormalizeRow mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeRow_NullCells(t *testing.T) {
	row := Row{
		ColumnName:                nil,
		ColumnOwners:              nil,
		ColumnCapital:             nil,
		ColumnScore:               nil,
		ColumnCity:                nil,
		ColumnNeighborhood:        nil,
		ColumnAddress:             nil,
		ColumnPhones:              nil,
		ColumnMicroEntrepreneur:   nil,
		ColumnActivityDescription: nil,
	}

	got := NormalizeRow(row)

	if got.Phones != NullText || got.Address != NullText || got.Name != NullText || got.ActivityDescription != NullText {
		t.Errorf("null text cells should become %q, got %+v", NullText, got)
	}
	if got.Neighborhood != model.NeighborhoodNotInformed {
		t.Errorf("null neighborhood = %q, want %q", got.Neighborhood, model.NeighborhoodNotInformed)
	}
	if got.IsMicroEntrepreneur {
		t.Error("null micro-entrepreneur flag should be false")
	}
	if got.OwnerNames != "" {
		t.Errorf("null owner should stay empty, got %q", got.OwnerNames)
	}
	if got.Score != 0 || got.Capital != 0 {
		t.Errorf("null numbers should be zero, got score=%d capital=%f", got.Score, got.Capital)
	}
}

func TestNormalizeRow_AbsentColumns(t *testing.T) {
	got := NormalizeRow(Row{ColumnScore: 5})

	if got.Phones != "" || got.Address != "" || got.Name != "" || got.ActivityDescription != "" {
		t.Errorf("absent text columns should default to empty strings, got %+v", got)
	}
	if got.IsMicroEntrepreneur {
		t.Error("absent micro-entrepreneur column should default to false")
	}
	if got.Neighborhood != model.NeighborhoodNotInformed {
		t.Errorf("absent neighborhood = %q, want %q", got.Neighborhood, model.NeighborhoodNotInformed)
	}
	if got.Score != 5 {
		t.Errorf("score = %d, want 5", got.Score)
	}
}

func TestNormalizeRow_Coercion(t *testing.T) {
	tests := []struct {
		name      string
		row       Row
		wantScore int
		wantMEI   bool
	}{
		{name: "float cells", row: Row{ColumnScore: 8.0, ColumnMicroEntrepreneur: 1.0}, wantScore: 8, wantMEI: true},
		{name: "decimal strings", row: Row{ColumnScore: "6.0", ColumnMicroEntrepreneur: "1.0"}, wantScore: 6, wantMEI: true},
		{name: "zero flag", row: Row{ColumnScore: 3, ColumnMicroEntrepreneur: 0}, wantScore: 3, wantMEI: false},
		{name: "bool flag", row: Row{ColumnScore: int32(4), ColumnMicroEntrepreneur: true}, wantScore: 4, wantMEI: true},
		{name: "garbage score", row: Row{ColumnScore: "high"}, wantScore: 0, wantMEI: false},
		{name: "score above range", row: Row{ColumnScore: 15}, wantScore: 10, wantMEI: false},
		{name: "negative score", row: Row{ColumnScore: -2}, wantScore: 0, wantMEI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRow(tt.row)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.IsMicroEntrepreneur != tt.wantMEI {
				t.Errorf("micro-entrepreneur = %v, want %v", got.IsMicroEntrepreneur, tt.wantMEI)
			}
		})
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	rows := []Row{
		{ColumnName: "first"},
		{ColumnName: "second"},
		{ColumnName: "third"},
	}

	leads := Normalize(rows)
	if len(leads) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(leads))
	}
	for i, want := range []string{"first", "second", "third"} {
		if leads[i].Name != want {
			t.Errorf("leads[%d].Name = %q, want %q", i, leads[i].Name, want)
		}
	}

	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("expected no leads for nil rows, got %d", len(got))
	}
}
