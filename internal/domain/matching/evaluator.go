package matching

// Evaluator applies the hard constraints and the skill policy to a
// (source, candidate) pair and scores the pairs that qualify.
type Evaluator struct {
	policy SkillPolicy
}

func NewEvaluator(policy SkillPolicy) Evaluator {
	if policy == nil {
		policy = StrictSuperset{}
	}
	return Evaluator{policy: policy}
}

func (e Evaluator) Policy() SkillPolicy {
	return e.policy
}

func (e Evaluator) Qualifies(c Criteria, source, candidate Terms, eligible bool) bool {
	if !c.Qualifies(candidate, eligible) {
		return false
	}
	res, req := c.Orient(source, candidate)
	return e.policy.Compatible(res.Skills, req.Skills)
}

func (e Evaluator) Score(c Criteria, source, candidate Terms) Score {
	res, req := c.Orient(source, candidate)
	return ScorePair(res.Skills, req.Skills)
}
