package finbook

// GoalVerdict classifies the actual savings percentage against a goal.
type GoalVerdict int

const (
	// GoalNoIncome means the goal cannot be evaluated without income.
	GoalNoIncome GoalVerdict = iota
	// GoalWellAbove means the goal is exceeded by more than 10 points.
	GoalWellAbove
	// GoalMet means the goal is reached.
	GoalMet
	// GoalUnder means the goal is missed by up to 20 points.
	GoalUnder
	// GoalFarUnder means the goal is missed by more than 20 points.
	GoalFarUnder
)

func (v GoalVerdict) String() string {
	switch v {
	case GoalNoIncome:
		return "no income"
	case GoalWellAbove:
		return "well above goal"
	case GoalMet:
		return "goal met"
	case GoalUnder:
		return "under goal"
	case GoalFarUnder:
		return "significant shortfall"
	default:
		return "unknown"
	}
}

// GoalReport is the outcome of evaluating a savings goal.
type GoalReport struct {
	Goal    Percent // the monthly savings goal, in percent of income
	Actual  Percent // the achieved savings percentage
	Delta   Percent // Actual minus Goal; negative when under
	Verdict GoalVerdict
}

// EvaluateSavingsGoal compares the achieved savings percentage with a goal
// expressed in percent of income. Without any income the goal cannot be
// evaluated.
func EvaluateSavingsGoal(s Statistics, goal Percent) GoalReport {
	report := GoalReport{Goal: goal}
	if !s.TotalIncome.IsPositive() {
		report.Verdict = GoalNoIncome
		return report
	}

	report.Actual = s.SavingsPercentage
	report.Delta = report.Actual - goal
	switch {
	case report.Delta >= 10:
		report.Verdict = GoalWellAbove
	case report.Delta >= 0:
		report.Verdict = GoalMet
	case report.Delta < -20:
		report.Verdict = GoalFarUnder
	default:
		report.Verdict = GoalUnder
	}
	return report
}
