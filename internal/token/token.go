// Package token defines the lexical token kinds produced by the
// EquationText scanner and the keyword tables used to classify words.
package token

// Kind identifies the lexical category of a Token. The enumeration
// mirrors CellML Text's scanner token set: keywords, SI unit names,
// prefix names, mathematical function and constant names, punctuation,
// and the handful of structural tokens (comments, numbers, strings,
// identifiers, end of file).
//
// Several sub-ranges are contiguous by construction so that range
// membership can be tested with plain integer comparisons instead of a
// lookup table: FirstUnit..LastUnit, FirstMathematicalConstant..
// LastMathematicalConstant, FirstOneArgumentFunction..
// LastOneArgumentFunction, FirstOneOrTwoArgumentFunction..
// LastOneOrTwoArgumentFunction, FirstTwoArgumentFunction..
// LastTwoArgumentFunction, FirstTwoOrMoreArgumentFunction..
// LastTwoOrMoreArgumentFunction, FirstPrefix..LastPrefix. Keep the
// groups below contiguous if you add a member to any of them.
type Kind int

const (
	Unknown Kind = iota
	SingleLineComment
	MultilineComment
	String
	IdentifierOrCmetaId
	ProperCmetaId
	Number
	Invalid

	// CellML Text keywords (reserved, not all wired to a grammar
	// production; see the model/component/units keywords below).

	And
	As
	Between
	Case
	Comp
	Def
	EndComp
	EndDef
	EndSel
	For
	Group
	Import
	Incl
	Map
	Model
	Otherwise
	Sel
	Unit
	Using
	Var
	Vars

	Or
	Xor
	Not

	Ode

	// One-argument mathematical functions.

	Abs
	Ceil
	Exp
	Fact
	Floor
	Ln
	Sqr
	Sqrt

	Sin
	Cos
	Tan
	Sec
	Csc
	Cot
	Sinh
	Cosh
	Tanh
	Sech
	Csch
	Coth
	Asin
	Acos
	Atan
	Asec
	Acsc
	Acot
	Asinh
	Acosh
	Atanh
	Asech
	Acsch
	Acoth

	FirstOneArgumentFunction = Abs
	LastOneArgumentFunction  = Acoth

	// One- or two-argument mathematical functions.

	Log Kind = iota

	FirstOneOrTwoArgumentFunction = Log
	LastOneOrTwoArgumentFunction  = Log

	// Two-argument mathematical functions.

	Pow Kind = iota
	Rem
	Root

	FirstTwoArgumentFunction = Pow
	LastTwoArgumentFunction  = Root

	// Two-or-more-argument mathematical functions.

	Min Kind = iota
	Max

	Gcd
	Lcm

	FirstTwoOrMoreArgumentFunction = Min
	LastTwoOrMoreArgumentFunction  = Lcm

	// Mathematical constants.

	True Kind = iota
	False
	Nan
	Pi
	Inf
	E

	FirstMathematicalConstant = True
	LastMathematicalConstant  = E

	Base Kind = iota
	Encapsulation
	Containment

	// SI units.

	Ampere
	Becquerel
	Candela
	Celsius
	Coulomb
	Dimensionless
	Farad
	Gram
	Gray
	Henry
	Hertz
	Joule
	Katal
	Kelvin
	Kilogram
	Liter
	Litre
	Lumen
	Lux
	Meter
	Metre
	Mole
	Newton
	Ohm
	Pascal
	Radian
	Second
	Siemens
	Sievert
	Steradian
	Tesla
	Volt
	Watt
	Weber

	FirstUnit = Ampere
	LastUnit  = Weber

	// CellML Text parameter-block keywords.

	Pref Kind = iota
	Expo
	Mult
	Off

	Init
	Pub
	Priv

	Yotta
	Zetta
	Exa
	Peta
	Tera
	Giga
	Mega
	Kilo
	Hecto
	Deka
	Deci
	Centi
	Milli
	Micro
	Nano
	Pico
	Femto
	Atto
	Zepto
	Yocto

	FirstPrefix = Yotta
	LastPrefix  = Yocto

	In Kind = iota
	Out
	None

	// Miscellaneous.

	Quote
	Comma
	Eq
	EqEq
	Neq
	Lt
	Leq
	Gt
	Geq
	Plus
	Minus
	Times
	Divide
	Colon
	SemiColon
	OpeningBracket
	ClosingBracket
	OpeningCurlyBracket
	ClosingCurlyBracket
	Eof
)

// InRange reports whether k lies within [from, to], inclusive. It is
// how the parser tests membership of one of the contiguous sub-ranges
// above (e.g. token.InRange(k, token.FirstUnit, token.LastUnit)).
func InRange(k, from, to Kind) bool {
	return k >= from && k <= to
}

// Keywords maps general CellML Text keywords (statement keywords,
// boolean/logical operators, function names, mathematical constants,
// and the "base"/"encapsulation"/"containment" model keywords) to their
// token kind. Looked up only outside a parameter block.
var Keywords = map[string]Kind{
	"and":      And,
	"as":       As,
	"between":  Between,
	"case":     Case,
	"comp":     Comp,
	"def":      Def,
	"endcomp":  EndComp,
	"enddef":   EndDef,
	"endsel":   EndSel,
	"for":      For,
	"group":    Group,
	"import":   Import,
	"incl":     Incl,
	"map":      Map,
	"model":    Model,
	"otherwise": Otherwise,
	"sel":      Sel,
	"unit":     Unit,
	"using":    Using,
	"var":      Var,
	"vars":     Vars,

	"abs":   Abs,
	"ceil":  Ceil,
	"exp":   Exp,
	"fact":  Fact,
	"floor": Floor,
	"ln":    Ln,
	"log":   Log,
	"pow":   Pow,
	"rem":   Rem,
	"root":  Root,
	"sqr":   Sqr,
	"sqrt":  Sqrt,

	"or":  Or,
	"xor": Xor,
	"not": Not,

	"ode": Ode,

	"min": Min,
	"max": Max,

	"gcd": Gcd,
	"lcm": Lcm,

	"sin":  Sin,
	"cos":  Cos,
	"tan":  Tan,
	"sec":  Sec,
	"csc":  Csc,
	"cot":  Cot,
	"sinh": Sinh,
	"cosh": Cosh,
	"tanh": Tanh,
	"sech": Sech,
	"csch": Csch,
	"coth": Coth,

	"asin": Asin,
	"acos": Acos,
	"atan": Atan,
	"asec": Asec,
	"acsc": Acsc,
	"acot": Acot,

	"asinh": Asinh,
	"acosh": Acosh,
	"atanh": Atanh,
	"asech": Asech,
	"acsch": Acsch,
	"acoth": Acoth,

	"true":  True,
	"false": False,
	"nan":   Nan,
	"pi":    Pi,
	"inf":   Inf,
	"e":     E,

	"base":          Base,
	"encapsulation":  Encapsulation,
	"containment":    Containment,
}

// SIUnitKeywords maps SI unit names to their token kind. Consulted when
// a word isn't a general keyword, both inside and outside a parameter
// block (unit names appear in both e.g. "5{second}" and parameter
// blocks like "{init: 1{volt}}").
var SIUnitKeywords = map[string]Kind{
	"ampere":     Ampere,
	"becquerel":  Becquerel,
	"candela":    Candela,
	"celsius":    Celsius,
	"coulomb":    Coulomb,
	"dimensionless": Dimensionless,
	"farad":      Farad,
	"gram":       Gram,
	"gray":       Gray,
	"henry":      Henry,
	"hertz":      Hertz,
	"joule":      Joule,
	"katal":      Katal,
	"kelvin":     Kelvin,
	"kilogram":   Kilogram,
	"liter":      Liter,
	"litre":      Litre,
	"lumen":      Lumen,
	"lux":        Lux,
	"meter":      Meter,
	"metre":      Metre,
	"mole":       Mole,
	"newton":     Newton,
	"ohm":        Ohm,
	"pascal":     Pascal,
	"radian":     Radian,
	"second":     Second,
	"siemens":    Siemens,
	"sievert":    Sievert,
	"steradian":  Steradian,
	"tesla":      Tesla,
	"volt":       Volt,
	"watt":       Watt,
	"weber":      Weber,
}

// ParameterKeywords maps words that are only reserved inside a
// parameter block ("{...}"): unit prefixes, SI unit modifiers
// (pref/expo/mult/off), variable interface keywords (init/pub/priv,
// in/out/none).
var ParameterKeywords = map[string]Kind{
	"pref": Pref,
	"expo": Expo,
	"mult": Mult,
	"off":  Off,

	"init": Init,
	"pub":  Pub,
	"priv": Priv,

	"yotta": Yotta,
	"zetta": Zetta,
	"exa":   Exa,
	"peta":  Peta,
	"tera":  Tera,
	"giga":  Giga,
	"mega":  Mega,
	"kilo":  Kilo,
	"hecto": Hecto,
	"deka":  Deka,
	"deci":  Deci,
	"centi": Centi,
	"milli": Milli,
	"micro": Micro,
	"nano":  Nano,
	"pico":  Pico,
	"femto": Femto,
	"atto":  Atto,
	"zepto": Zepto,
	"yocto": Yocto,

	"in":   In,
	"out":  Out,
	"none": None,
}
