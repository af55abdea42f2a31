package intel

import (
	"context"

	"github.com/aretw0/lifeos/pkg/domain"
)

// The static scanners return curated frontier updates. They stand in for
// live feeds until a domain gets a network-backed scanner.

type technologyScanner struct{}

func (technologyScanner) Domain() string { return domain.FrontierTechnology }

func (technologyScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	return []domain.FrontierUpdate{
		{
			Area:         "artificial_intelligence",
			Description:  "New multimodal AI models showing emergent capabilities",
			Significance: 0.9,
			Timeline:     "immediate",
			Implications: []string{"Skill requirements changing rapidly", "New automation opportunities"},
		},
		{
			Area:         "blockchain",
			Description:  "Regulatory clarity improving in major markets",
			Significance: 0.6,
			Timeline:     "6-12 months",
			Implications: []string{"Infrastructure investment opportunities", "Compliance arbitrage"},
		},
	}, nil
}

type politicsScanner struct{}

func (politicsScanner) Domain() string { return domain.FrontierPolitics }

func (politicsScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	return []domain.FrontierUpdate{
		{
			Area:         "trade_policy",
			Description:  "Supply chain reshoring accelerating",
			Significance: 0.8,
			Timeline:     "12-24 months",
			Implications: []string{"Geographic arbitrage opportunities", "Supply chain disruptions"},
		},
		{
			Area:         "monetary_policy",
			Description:  "Central banks diverging on inflation approach",
			Significance: 0.7,
			Timeline:     "6-18 months",
			Implications: []string{"Currency volatility opportunities", "Interest rate arbitrage"},
		},
	}, nil
}

type businessScanner struct{}

func (businessScanner) Domain() string { return domain.FrontierBusiness }

func (businessScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	return []domain.FrontierUpdate{
		{
			Area:         "remote_work",
			Description:  "Permanent shift to hybrid/remote work models",
			Significance: 0.8,
			Timeline:     "permanent",
			Implications: []string{"Geographic arbitrage enabled", "Commercial real estate disruption"},
		},
		{
			Area:         "creator_economy",
			Description:  "Direct monetization tools improving rapidly",
			Significance: 0.7,
			Timeline:     "immediate",
			Implications: []string{"Audience-first business models", "Platform independence opportunities"},
		},
	}, nil
}

type socialScanner struct{}

func (socialScanner) Domain() string { return domain.FrontierSocial }

func (socialScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	return []domain.FrontierUpdate{
		{
			Area:         "trust_dynamics",
			Description:  "Declining trust in traditional institutions",
			Significance: 0.8,
			Timeline:     "ongoing",
			Implications: []string{"Alternative authority opportunities", "Direct relationship premium"},
		},
		{
			Area:         "community_formation",
			Description:  "Digital-first communities gaining economic power",
			Significance: 0.6,
			Timeline:     "accelerating",
			Implications: []string{"Network effect opportunities", "Community-driven business models"},
		},
	}, nil
}

type economicsScanner struct{}

func (economicsScanner) Domain() string { return domain.FrontierEconomics }

func (economicsScanner) Scan(ctx context.Context) ([]domain.FrontierUpdate, error) {
	return []domain.FrontierUpdate{
		{
			Area:         "inflation_dynamics",
			Description:  "Persistent inflation changing consumer behavior",
			Significance: 0.7,
			Timeline:     "ongoing",
			Implications: []string{"Asset allocation shifts", "Pricing power opportunities"},
		},
		{
			Area:         "labor_markets",
			Description:  "Skills premium widening dramatically",
			Significance: 0.9,
			Timeline:     "accelerating",
			Implications: []string{"Skill arbitrage opportunities", "Education disruption"},
		},
	}, nil
}
