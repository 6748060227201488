package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincheck/internal/domain"
)

func TestAlignPages(t *testing.T) {
	ai := &domain.VisionDocument{Pages: []domain.VisionPage{
		{PageNumber: 1, PageText: "ai one"},
		{PageNumber: 3, PageText: "ai three"},
	}}
	source := &domain.SourceDocument{Pages: []domain.SourcePage{
		{PageNumber: 1, PageText: "source one"},
		{PageNumber: 2, PageText: "source two"},
	}}

	pairs := AlignPages(ai, source)

	assert.Len(t, pairs, 3)

	assert.Equal(t, 1, pairs[0].PageNumber)
	assert.Equal(t, "ai one", pairs[0].AIText())
	assert.Equal(t, "source one", pairs[0].SourceText())

	// Page 2 exists only locally; the vision side participates as empty.
	assert.Nil(t, pairs[1].AI)
	assert.Equal(t, "", pairs[1].AIText())
	assert.Equal(t, "source two", pairs[1].SourceText())

	// Page 3 exists only on the vision side.
	assert.Nil(t, pairs[2].Source)
	assert.Equal(t, "ai three", pairs[2].AIText())
	assert.Equal(t, "", pairs[2].SourceText())
}

func TestAlignPagesDuplicatesResolveToFirstOccurrence(t *testing.T) {
	ai := &domain.VisionDocument{Pages: []domain.VisionPage{
		{PageNumber: 1, PageText: "first"},
		{PageNumber: 1, PageText: "second"},
	}}

	pairs := AlignPages(ai, nil)

	assert.Len(t, pairs, 1)
	assert.Equal(t, "first", pairs[0].AIText())
}

func TestAlignPagesEmptyInputs(t *testing.T) {
	assert.Empty(t, AlignPages(nil, nil))
	assert.Empty(t, AlignPages(&domain.VisionDocument{}, &domain.SourceDocument{}))
}
