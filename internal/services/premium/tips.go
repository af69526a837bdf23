package premium

// Tip strings, grouped by the rule that selects them.
const (
	TipYoungAge        = "Young Age Advantage: Lock in a high coverage policy now while premiums are low."
	TipNoClaimBonus    = "No Claim Bonus: Start building your NCB early to get up to 100% extra coverage free."
	TipCriticalIllness = "Critical Illness Cover: Highly recommended to add a rider for cardiac or cancer cover."
	TipRestoration     = "Restoration Benefit: Ensure your policy auto-refills sum insured if exhausted."
	TipWaitingPeriod   = "Waiting Period: Be aware of the 2-4 year waiting period for your pre-existing conditions."
	TipDisclosure      = "Disclosure: Always disclose full medical history to avoid claim rejection."
	TipFamilyFloater   = "Family Floater: A single floater plan is ~30% cheaper than individual plans for each member."
	TipMaternity       = "Maternity Benefit: If planning a family, check waiting periods for maternity cover."
)

// GetInsuranceTips returns the tips whose rules match, in rule order.
// The age rules are exclusive: under 30 or over 45, never both.
func GetInsuranceTips(age int, hasPreExisting bool, familySize int) []string {
	tips := []string{}

	if age < 30 {
		tips = append(tips, TipYoungAge, TipNoClaimBonus)
	} else if age > 45 {
		tips = append(tips, TipCriticalIllness, TipRestoration)
	}

	if hasPreExisting {
		tips = append(tips, TipWaitingPeriod, TipDisclosure)
	}

	if familySize > 1 {
		tips = append(tips, TipFamilyFloater, TipMaternity)
	}

	return tips
}
