package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const AverageRatingQueryName = "AverageRating"

type AverageRatingData struct {
	ProgramID string
}

type averageRatingQuery struct {
	data AverageRatingData
}

func (q averageRatingQuery) QueryName() string {
	return AverageRatingQueryName
}

func (q averageRatingQuery) Payload() AverageRatingData {
	return q.data
}

func NewAverageRatingQuery(data AverageRatingData) domain.Query[AverageRatingData] {
	return averageRatingQuery{data: data}
}
