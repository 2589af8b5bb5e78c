package registry

// DefaultSource is the source language of documents unless configured
// otherwise.
const DefaultSource = "ENGB"

var defaultEntries = []Entry{
	{Code: "ENGB", Name: "English (United Kingdom)", Aliases: []string{"EN-GB", "English UK"}},
	{Code: "ENUS", Name: "English (United States)", Aliases: []string{"EN-US", "English US"}},
	{Code: "FRFR", Name: "French (France)", Aliases: []string{"FR-FR"}},
	{Code: "FRCA", Name: "French (Canada)", Aliases: []string{"FR-CA"}},
	{Code: "DEDE", Name: "German (Germany)", Aliases: []string{"DE-DE"}},
	{Code: "DEAT", Name: "German (Austria)", Aliases: []string{"DE-AT"}},
	{Code: "DECH", Name: "German (Switzerland)", Aliases: []string{"DE-CH"}},
	{Code: "ESES", Name: "Spanish (Spain)", Aliases: []string{"ES-ES"}},
	{Code: "ESMX", Name: "Spanish (Mexico)", Aliases: []string{"ES-MX"}},
	{Code: "ITIT", Name: "Italian (Italy)", Aliases: []string{"IT-IT"}},
	{Code: "NLNL", Name: "Dutch (Netherlands)", Aliases: []string{"NL-NL"}},
	{Code: "NLBE", Name: "Dutch (Belgium)", Aliases: []string{"NL-BE"}},
	{Code: "PTPT", Name: "Portuguese (Portugal)", Aliases: []string{"PT-PT"}},
	{Code: "PTBR", Name: "Portuguese (Brazil)", Aliases: []string{"PT-BR"}},
	{Code: "PLPL", Name: "Polish (Poland)", Aliases: []string{"PL-PL"}},
	{Code: "CSCZ", Name: "Czech (Czechia)", Aliases: []string{"CS-CZ"}},
	{Code: "SKSK", Name: "Slovak (Slovakia)", Aliases: []string{"SK-SK"}},
	{Code: "HUHU", Name: "Hungarian (Hungary)", Aliases: []string{"HU-HU"}},
	{Code: "RORO", Name: "Romanian (Romania)", Aliases: []string{"RO-RO"}},
	{Code: "BGBG", Name: "Bulgarian (Bulgaria)", Aliases: []string{"BG-BG"}},
	{Code: "HRHR", Name: "Croatian (Croatia)", Aliases: []string{"HR-HR"}},
	{Code: "SLSI", Name: "Slovenian (Slovenia)", Aliases: []string{"SL-SI"}},
	{Code: "ELGR", Name: "Greek (Greece)", Aliases: []string{"EL-GR"}},
	{Code: "SVSE", Name: "Swedish (Sweden)", Aliases: []string{"SV-SE"}},
	{Code: "DADK", Name: "Danish (Denmark)", Aliases: []string{"DA-DK"}},
	{Code: "NONO", Name: "Norwegian (Norway)", Aliases: []string{"NO-NO", "NB-NO"}},
	{Code: "FIFI", Name: "Finnish (Finland)", Aliases: []string{"FI-FI"}},
	{Code: "ETEE", Name: "Estonian (Estonia)", Aliases: []string{"ET-EE"}},
	{Code: "LVLV", Name: "Latvian (Latvia)", Aliases: []string{"LV-LV"}},
	{Code: "LTLT", Name: "Lithuanian (Lithuania)", Aliases: []string{"LT-LT"}},
	{Code: "TRTR", Name: "Turkish (Turkey)", Aliases: []string{"TR-TR"}},
	{Code: "RURU", Name: "Russian (Russia)", Aliases: []string{"RU-RU"}},
	{Code: "UKUA", Name: "Ukrainian (Ukraine)", Aliases: []string{"UK-UA"}},
	{Code: "ARSA", Name: "Arabic (Saudi Arabia)", Aliases: []string{"AR-SA"}},
	{Code: "HEIL", Name: "Hebrew (Israel)", Aliases: []string{"HE-IL"}},
	{Code: "JAJP", Name: "Japanese (Japan)", Aliases: []string{"JA-JP"}},
	{Code: "KOKR", Name: "Korean (Korea)", Aliases: []string{"KO-KR"}},
	{Code: "ZHCN", Name: "Chinese (Simplified)", Aliases: []string{"ZH-CN", "ZH-HANS"}},
	{Code: "ZHTW", Name: "Chinese (Traditional)", Aliases: []string{"ZH-TW", "ZH-HANT"}},
	{Code: "THTH", Name: "Thai (Thailand)", Aliases: []string{"TH-TH"}},
	{Code: "VIVN", Name: "Vietnamese (Vietnam)", Aliases: []string{"VI-VN"}},
	{Code: "IDID", Name: "Indonesian (Indonesia)", Aliases: []string{"ID-ID"}},
}

var defaultRegistry = MustNew(defaultEntries)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}
