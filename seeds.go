package lifeos

// Foundational living documents created on first start.

const worldviewSeed = `# Worldview Framework

## Core Philosophy
Based on Nassim Taleb's Incerto series, complexity theory, and antifragile design.

## Virtue Stack (Evolving)
- **Honor**: Integrity in all dealings, skin in the game
- **Glory**: Excellence and mastery in chosen domains
- **Bravery**: Calculated risk-taking with asymmetric upside
- **Gallantry**: Noble conduct especially under pressure
- **Chivalry**: Protection of the vulnerable and just causes

## Mental Models (Core)
- **Asymmetry**: Hunt for bets where upside far outweighs downside (10:1+ ratios)
- **Antifragility**: Prefer systems that gain from disorder and stress
- **Via Negativa**: Subtraction is improvement - remove to strengthen
- **Barbell Strategy**: Combine extreme safety + extreme risk/reward
- **Convexity**: Seek nonlinear gains that accelerate with input
- **Lindy Effect**: What has survived long has longer expected survival
- **Frontier Dynamics**: Changes at edges create asymmetric opportunities

## Current Game Theoretic Understanding
- **Primary Game**: Individual skill/network/capital development
- **Secondary Games**: Professional positioning, social capital building
- **Meta Game**: System design for continuous evolution and adaptation
- **Dominant Strategy**: Preserve optionality while building convex positions

## Strategic Worldview (Current)
- **Technology**: AI revolution creating massive skill arbitrage opportunities
- **Economics**: Inflation and asset bubbles creating hedge needs
- **Geopolitics**: Decentralization trends creating new sovereignty options
- **Social**: Trust in institutions declining, direct relationships premium
- **Personal**: Building antifragile positioning across all capital types

## Decision Framework
1. **Intel Check**: No direction without frontier intelligence
2. **Worldview Alignment**: Must align with virtue stack and mental models
3. **Asymmetry Assessment**: Minimum 3:1 upside/downside, prefer 10:1+
4. **Optionality Preservation**: Never close off future opportunities
5. **Antifragile Positioning**: Prefer strategies that gain from volatility
6. **Dependency Management**: Map path, circular, and scale dependencies

## Evolution Triggers
- Frontier detection signals requiring worldview updates
- New insights from books, conversations, experiences
- Strategic outcomes that validate or invalidate assumptions
- Black Swan events that reshape understanding
`

const negotiationSeed = `# Negotiation Heuristics

## Core Principles (Taleb-Inspired)
- **Skin in the Game**: Ensure other party has real stakes
- **Via Negativa**: Remove obstacles rather than adding complexity
- **Asymmetric Positioning**: Structure deals with convex payoffs
- **Antifragile Relationships**: Build relationships that strengthen under stress

## Strategic Framework
1. **Preparation Phase**: Research leverage points, BATNA development
2. **Opening Phase**: Establish frame and set asymmetric anchors
3. **Exploration Phase**: Uncover interests, map decision criteria
4. **Bargaining Phase**: Create value before claiming value
5. **Closing Phase**: Secure commitment with implementation details

## Advanced Techniques
- **Option Creation**: Generate multiple pathways to agreement
- **Convex Structuring**: Deals that improve with uncertainty
- **Relationship Investment**: Long-term relationship value over short-term gains
- **Fragility Testing**: Stress-test agreements under different scenarios

## Evolution Notes
- Track outcomes by negotiation type and counterparty
- Update techniques based on effectiveness data
- Integrate new insights from books, experiences, observations
`
