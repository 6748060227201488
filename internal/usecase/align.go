package usecase

import "fincheck/internal/domain"

// AlignPages unifies the two independently indexed page collections into one
// ordered sequence keyed by page number, 1 through the highest page number on
// either side. Duplicate page numbers within a source resolve to the first
// occurrence. A page present in only one source still participates with the
// other side nil: partial evidence is scored, never silently excluded.
func AlignPages(ai *domain.VisionDocument, source *domain.SourceDocument) []domain.PagePair {
	aiIndex := make(map[int]*domain.VisionPage)
	maxPage := 0
	if ai != nil {
		for i := range ai.Pages {
			p := &ai.Pages[i]
			if _, ok := aiIndex[p.PageNumber]; ok {
				continue
			}
			aiIndex[p.PageNumber] = p
			if p.PageNumber > maxPage {
				maxPage = p.PageNumber
			}
		}
	}

	sourceIndex := make(map[int]*domain.SourcePage)
	if source != nil {
		for i := range source.Pages {
			p := &source.Pages[i]
			if _, ok := sourceIndex[p.PageNumber]; ok {
				continue
			}
			sourceIndex[p.PageNumber] = p
			if p.PageNumber > maxPage {
				maxPage = p.PageNumber
			}
		}
	}

	pairs := make([]domain.PagePair, 0, maxPage)
	for n := 1; n <= maxPage; n++ {
		pairs = append(pairs, domain.PagePair{
			PageNumber: n,
			AI:         aiIndex[n],
			Source:     sourceIndex[n],
		})
	}
	return pairs
}
