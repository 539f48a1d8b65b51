package classify

import "github.com/jiyul/junior-insight/internal/models"

// opinionOptions is the fixed 3-choice stance set per category.
var opinionOptions = map[models.Category][]string{
	models.CategoryTechEconomy: {
		"기술 발전은 사회에 긍정적 영향을 줄 것이다",
		"기술 발전의 부작용에 더 주의해야 한다",
		"아직은 판단하기 어렵다",
	},
	models.CategoryEnvironment: {
		"지금 당장 강력한 환경 규제가 필요하다",
		"경제 발전과 환경 보호 사이의 균형이 중요하다",
		"과학 기술이 이 문제를 해결해 줄 것이다",
	},
	models.CategoryEconomy: {
		"경기 부양을 위한 적극적 정책이 필요하다",
		"재정 건전성을 지키는 것이 더 중요하다",
		"상황을 더 지켜봐야 한다",
	},
	models.CategorySociety: {
		"정부의 적극적인 개입이 필요하다",
		"민간의 자율에 맡기는 것이 바람직하다",
		"여러 이해관계자가 함께 해결해야 한다",
	},
	models.CategoryWorld: {
		"국제 협력이 가장 중요하다",
		"각 나라의 자국 이익 추구는 당연하다",
		"상황에 따라 다르게 접근해야 한다",
	},
}

// OpinionOptions returns the stance choices presented for a category.
// Unknown categories get the World set.
func OpinionOptions(cat models.Category) []string {
	opts, ok := opinionOptions[cat]
	if !ok {
		opts = opinionOptions[models.CategoryWorld]
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}
