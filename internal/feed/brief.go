package feed

import (
	"fmt"

	"github.com/jiyul/junior-insight/internal/models"
)

// briefDetail carries the category-specific cause, impact and outlook
// sentences of a generated brief.
type briefDetail struct {
	cause   string
	impact  string
	outlook string
}

var briefDetails = map[models.Category]briefDetail{
	models.CategoryTechEconomy: {
		cause:   "이러한 흐름의 배경에는 AI·반도체 등 첨단 기술의 급속한 발전과 디지털 전환 가속화가 자리하고 있습니다.",
		impact:  "기업은 생산성과 비용 구조가 근본적으로 바뀌는 기회를 맞이하는 반면, 기존 일자리와 산업 생태계는 빠른 재편 압력을 받고 있어 노동 시장 전반에 걸친 영향이 우려됩니다.",
		outlook: "앞으로는 기술을 다루는 역량이 개인과 기업의 경쟁력을 가르는 핵심 지표가 될 것이며, 정부와 교육 기관의 신속한 대응 체계 마련이 요구됩니다.",
	},
	models.CategoryEnvironment: {
		cause:   "지구 온난화와 산업화에 따른 탄소 배출 누적이 이번 사태의 근본 원인으로 지목되고 있으며, 오랜 기간 쌓인 환경 부하가 임계점을 넘기 시작했다는 분석이 나옵니다.",
		impact:  "이로 인해 이상 기후, 농업 생산 차질, 해안 도시 침수 위험 등이 현실적 위협으로 다가오고 있으며, 취약 계층과 저개발 국가일수록 피해가 집중될 것으로 우려됩니다.",
		outlook: "향후 각국의 탄소 중립 목표 이행 속도가 빨라지고, 친환경 에너지·기술에 대한 투자가 대폭 확대되는 방향으로 글로벌 정책이 재편될 것으로 전망됩니다.",
	},
	models.CategoryEconomy: {
		cause:   "글로벌 통화 정책의 방향 전환, 지정학적 리스크, 그리고 공급망 재편이 복합적으로 맞물려 이 같은 경제 변동이 나타나고 있습니다.",
		impact:  "가계 대출 부담, 기업 투자 심리, 수출입 가격 구조 등 실물 경제 전반에 연쇄 파급 효과가 예상되며, 특히 금리와 환율에 민감한 서민 경제가 직격탄을 맞을 수 있습니다.",
		outlook: "전문가들은 단기적 불확실성이 지속되는 가운데, 구조적 체질 개선과 새로운 성장 동력 발굴이 병행되어야 중장기 안정을 확보할 수 있다고 조언합니다.",
	},
	models.CategorySociety: {
		cause:   "저출산·고령화, 사회적 양극화, 그리고 기존 제도와 현실 사이의 괴리가 커지면서 이 문제가 수면 위로 떠오르게 되었습니다.",
		impact:  "취약 계층과 사회적 소수자부터 평범한 시민까지 광범위한 영향을 받으며, 사회 안전망과 공동체 신뢰가 흔들릴 수 있다는 우려가 제기됩니다.",
		outlook: "앞으로는 법·제도 정비와 함께 시민 사회의 자발적 참여가 결합된 종합적 해법이 필요하며, 정책 입안자들의 신속하고 현실적인 대응이 요구됩니다.",
	},
	models.CategoryWorld: {
		cause:   "주요국 간 이해관계 충돌, 국제 질서의 재편, 그리고 지역 분쟁의 장기화가 이 사안의 핵심 배경으로 작용하고 있습니다.",
		impact:  "이는 외교·경제·안보 등 다층적 차원에서 한국을 포함한 국제 사회 전반에 파급 효과를 미치며, 각국의 대외 전략 수정을 촉구하고 있습니다.",
		outlook: "전문가들은 다자 협력 체계의 복원과 전략적 외교 역량 강화가 앞으로의 핵심 과제가 될 것이라고 전망하며, 한국의 능동적 역할 모색도 중요해질 것으로 봅니다.",
	},
}

// BuildBrief composes a structured multi-sentence briefing for an article
// from its headline and the related headlines found in its description:
// background, current situation, wider context, then the category-specific
// cause, impact and outlook, and a closing pointer to the original.
func BuildBrief(title, source string, category models.Category, relatedHeadlines []string) []string {
	var related []string
	for _, h := range relatedHeadlines {
		if len(related) == 3 {
			break
		}
		headline, _ := SplitSourceSuffix(h)
		related = append(related, headline)
	}

	bg := fmt.Sprintf("%s에서 보도한 이 기사는 \"%s\"을(를) 주제로 다루고 있습니다.", source, title)

	situation := "현재 이 사안은 국내외 주요 언론이 집중 조명할 만큼 광범위한 관심을 받고 있습니다."
	if len(related) > 0 {
		situation = fmt.Sprintf("현재 \"%s\" 등 연관 사안이 잇따라 보도되며, 이 문제가 단발성이 아닌 지속적 흐름임을 보여 주고 있습니다.", related[0])
	}

	context := "이 주제는 다양한 이해관계자들 사이에서 활발한 논의가 이루어지고 있는 현안입니다."
	if len(related) > 1 {
		context = fmt.Sprintf("또한 \"%s\"과(와) 같은 후속 보도도 이어지고 있어, 이슈의 파급력이 여러 분야로 확산되는 양상입니다.", related[1])
	}

	det, ok := briefDetails[category]
	if !ok {
		det = briefDetails[models.CategoryWorld]
	}

	closing := fmt.Sprintf("이 기사는 %s에서 원문을 확인할 수 있으며, 이 사안이 앞으로 어떻게 전개되는지 지속적으로 살펴볼 필요가 있습니다.", source)

	return []string{bg, situation, context, det.cause, det.impact, det.outlook, closing}
}
