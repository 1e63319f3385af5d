package config

// evalConfiguration toggles optional evaluation terms layered on top of
// the mandatory material term.
type evalConfiguration struct {
	UseMobility      bool
	UseCenterControl bool
}

func init() {
	Settings.Eval.UseMobility = true
	Settings.Eval.UseCenterControl = true
}
