package filter

import (
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
)

func testRecords() []*metadata.ImageRecord {
	return []*metadata.ImageRecord{
		{ImageID: "r1", UserID: "userA", Tags: []string{"x"}, Title: "Sunset over the bay", Location: "California", CreatedAt: "2024-01-10T00:00:00Z"},
		{ImageID: "r2", UserID: "userB", Tags: []string{"y"}, Title: "Mountain trail", Location: "Colorado", CreatedAt: "2024-02-10T00:00:00Z"},
		{ImageID: "r3", UserID: "userA", Tags: []string{"x", "y"}, Title: "Bay bridge", Location: "California", CreatedAt: "2024-03-10T00:00:00Z"},
	}
}

func matchIDs(t *testing.T, expr Expr, records []*metadata.ImageRecord) []string {
	t.Helper()
	var ids []string
	for _, r := range records {
		if expr.Matches(r) {
			ids = append(ids, r.ImageID)
		}
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected matches %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected matches %v, got %v", want, got)
		}
	}
}

func TestFilter_OwnerEquality(t *testing.T) {
	records := testRecords()

	expr := And(Eq(FieldUserID, "userA"))
	assertIDs(t, matchIDs(t, expr, records), []string{"r1", "r3"})
}

func TestFilter_TagsAreOrAcrossCandidates(t *testing.T) {
	records := testRecords()

	expr := Or(Contains(FieldTags, "x"), Contains(FieldTags, "y"))
	assertIDs(t, matchIDs(t, expr, records), []string{"r1", "r2", "r3"})
}

func TestFilter_CriteriaAreAndedTogether(t *testing.T) {
	records := testRecords()

	expr := And(
		Eq(FieldUserID, "userA"),
		Or(Contains(FieldTags, "y")),
	)
	assertIDs(t, matchIDs(t, expr, records), []string{"r3"})
}

func TestFilter_EmptyAndAcceptsEverything(t *testing.T) {
	records := testRecords()

	assertIDs(t, matchIDs(t, And(), records), []string{"r1", "r2", "r3"})
}

func TestFilter_EmptyOrAcceptsNothing(t *testing.T) {
	records := testRecords()

	if ids := matchIDs(t, Or(), records); len(ids) != 0 {
		t.Fatalf("Expected no matches from empty Or, got %v", ids)
	}
}

func TestFilter_TitleAndLocationSubstring(t *testing.T) {
	records := testRecords()

	assertIDs(t, matchIDs(t, Contains(FieldTitle, "bay"), records), []string{"r1"})
	assertIDs(t, matchIDs(t, Contains(FieldLocation, "Calif"), records), []string{"r1", "r3"})

	// Matching is case-sensitive.
	assertIDs(t, matchIDs(t, Contains(FieldTitle, "Bay"), records), []string{"r3"})
}

func TestFilter_CreatedAtBoundsAreInclusive(t *testing.T) {
	records := testRecords()

	expr := And(
		Gte(FieldCreatedAt, "2024-02-10T00:00:00Z"),
		Lte(FieldCreatedAt, "2024-03-10T00:00:00Z"),
	)
	assertIDs(t, matchIDs(t, expr, records), []string{"r2", "r3"})
}

func TestFilter_TagEqualityIsExactMembership(t *testing.T) {
	record := &metadata.ImageRecord{ImageID: "r", Tags: []string{"sunset"}}

	if Contains(FieldTags, "sun").Matches(record) {
		t.Fatal("Tag matching must be set membership, not substring")
	}
	if !Contains(FieldTags, "sunset").Matches(record) {
		t.Fatal("Expected exact tag to match")
	}
}
