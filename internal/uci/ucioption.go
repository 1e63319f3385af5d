//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/kopparsynth/mailchess/internal/config"
)

// init defines every uci option this engine exposes and the order they
// are reported in during the "uci" handshake.
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Hash":         {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TTSize), CurrentValue: strconv.Itoa(Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},
		"Use_Hash":     {NameID: "Use_Hash", HandlerFunc: boolOption(&Settings.Search.UseTT), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseTT), CurrentValue: strconv.FormatBool(Settings.Search.UseTT)},

		"Use_Quiescence": {NameID: "Use_Quiescence", HandlerFunc: boolOption(&Settings.Search.UseQuiescence), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence)},
		"Use_DeltaPrune": {NameID: "Use_DeltaPrune", HandlerFunc: boolOption(&Settings.Search.UseDeltaPrune), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseDeltaPrune), CurrentValue: strconv.FormatBool(Settings.Search.UseDeltaPrune)},
		"Use_SEE":        {NameID: "Use_SEE", HandlerFunc: boolOption(&Settings.Search.UseSEE), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseSEE), CurrentValue: strconv.FormatBool(Settings.Search.UseSEE)},

		"Use_Killer":       {NameID: "Use_Killer", HandlerFunc: boolOption(&Settings.Search.UseKiller), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseKiller), CurrentValue: strconv.FormatBool(Settings.Search.UseKiller)},
		"Use_History":      {NameID: "Use_History", HandlerFunc: boolOption(&Settings.Search.UseHistory), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseHistory), CurrentValue: strconv.FormatBool(Settings.Search.UseHistory)},
		"Use_CounterMove":  {NameID: "Use_CounterMove", HandlerFunc: boolOption(&Settings.Search.UseCounterMove), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCounterMove), CurrentValue: strconv.FormatBool(Settings.Search.UseCounterMove)},
		"Use_PVMoveFromTT": {NameID: "Use_PVMoveFromTT", HandlerFunc: boolOption(&Settings.Search.UsePVMoveFromTT), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePVMoveFromTT), CurrentValue: strconv.FormatBool(Settings.Search.UsePVMoveFromTT)},

		"Use_Aspiration": {NameID: "Use_Aspiration", HandlerFunc: boolOption(&Settings.Search.UseAspirationWindow), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseAspirationWindow), CurrentValue: strconv.FormatBool(Settings.Search.UseAspirationWindow)},
		"Use_IID":        {NameID: "Use_IID", HandlerFunc: boolOption(&Settings.Search.UseIID), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseIID), CurrentValue: strconv.FormatBool(Settings.Search.UseIID)},
		"Use_Rfp":        {NameID: "Use_Rfp", HandlerFunc: boolOption(&Settings.Search.UseRFP), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseRFP), CurrentValue: strconv.FormatBool(Settings.Search.UseRFP)},
		"Use_NullMove":   {NameID: "Use_NullMove", HandlerFunc: boolOption(&Settings.Search.UseNullMove), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseNullMove), CurrentValue: strconv.FormatBool(Settings.Search.UseNullMove)},
		"Use_Lmr":        {NameID: "Use_Lmr", HandlerFunc: boolOption(&Settings.Search.UseLMR), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLMR), CurrentValue: strconv.FormatBool(Settings.Search.UseLMR)},
		"Use_Futility":   {NameID: "Use_Futility", HandlerFunc: boolOption(&Settings.Search.UseFutility), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseFutility), CurrentValue: strconv.FormatBool(Settings.Search.UseFutility)},

		"Eval_Mobility":      {NameID: "Eval_Mobility", HandlerFunc: boolOption(&Settings.Eval.UseMobility), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseMobility), CurrentValue: strconv.FormatBool(Settings.Eval.UseMobility)},
		"Eval_CenterControl": {NameID: "Eval_CenterControl", HandlerFunc: boolOption(&Settings.Eval.UseCenterControl), OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseCenterControl), CurrentValue: strconv.FormatBool(Settings.Eval.UseCenterControl)},
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Hash",
		"Use_Hash",

		"Use_Quiescence",
		"Use_DeltaPrune",
		"Use_SEE",

		"Use_Killer",
		"Use_History",
		"Use_CounterMove",
		"Use_PVMoveFromTT",

		"Use_Aspiration",
		"Use_IID",
		"Use_Rfp",
		"Use_NullMove",
		"Use_Lmr",
		"Use_Futility",

		"Eval_Mobility",
		"Eval_CenterControl",
	}
}

// GetOptions returns every available uci option rendered as a
// UCI-protocol "option name ..." line, in a fixed reporting order.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String renders a uciOption the way the "uci" handshake requires.
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Button:
		os.WriteString("button")
	}
	return os.String()
}

// uciOptionType enumerates the UCI option kinds this engine uses. The
// protocol also defines combo and string options; nothing here needs
// them yet.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

// optionHandler is called when "setoption" changes an option's value.
type optionHandler func(*UciHandler, *uciOption)

// uciOption is one entry of the UCI "option" handshake, together with
// the handler invoked when the GUI changes it.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap
var sortOrderUciOptions []string

// boolOption builds a handler that parses the option's CurrentValue as
// a bool into target, covering the large majority of this engine's
// options (every pruning/ordering toggle) without one handler function
// per flag.
func boolOption(target *bool) optionHandler {
	return func(_ *UciHandler, o *uciOption) {
		v, err := strconv.ParseBool(o.CurrentValue)
		if err != nil {
			log.Warningf("uci option %s: invalid bool value %q", o.NameID, o.CurrentValue)
			return
		}
		*target = v
		log.Debugf("Set %s to %v", o.NameID, v)
	}
}

func printConfig(handler *UciHandler, _ *uciOption) {
	handler.SendInfoString("Search Config:")
	dumpConfig(handler, reflect.ValueOf(&Settings.Search).Elem())
	handler.SendInfoString("Eval Config:")
	dumpConfig(handler, reflect.ValueOf(&Settings.Eval).Elem())
}

func dumpConfig(handler *UciHandler, s reflect.Value) {
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-20s %-6s = %v", t.Field(i).Name, f.Type(), f.Interface()))
	}
}

func clearCache(u *UciHandler, _ *uciOption) {
	u.mySearch.ClearHash()
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("uci option Hash: invalid size %q", o.CurrentValue)
		return
	}
	Settings.Search.TTSize = v
	u.mySearch.ResizeCache()
}
