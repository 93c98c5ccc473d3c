package client

import (
	"strings"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type language struct {
	name    string // english name, lower case
	whisper string // two or three letter code used by whisper models
	scribe  string // three letter code used by ElevenLabs
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	languages = []language{
		{"afrikaans", "af", "afr"},
		{"albanian", "sq", ""},
		{"amharic", "am", "amh"},
		{"arabic", "ar", "ara"},
		{"armenian", "hy", "hye"},
		{"assamese", "as", "asm"},
		{"asturian", "", "ast"},
		{"azerbaijani", "az", "aze"},
		{"bashkir", "ba", ""},
		{"basque", "eu", ""},
		{"belarusian", "be", "bel"},
		{"bengali", "bn", "ben"},
		{"bosnian", "bs", "bos"},
		{"breton", "br", ""},
		{"bulgarian", "bg", "bul"},
		{"cantonese", "yue", "yue"},
		{"catalan", "ca", "cat"},
		{"cebuano", "", "ceb"},
		{"chichewa", "", "nya"},
		{"chinese", "zh", "cmn"},
		{"croatian", "hr", "hrv"},
		{"czech", "cs", "ces"},
		{"danish", "da", "dan"},
		{"dutch", "nl", "nld"},
		{"english", "en", "eng"},
		{"estonian", "et", "est"},
		{"faroese", "fo", ""},
		{"finnish", "fi", "fin"},
		{"french", "fr", "fra"},
		{"fulah", "", "ful"},
		{"galician", "gl", "glg"},
		{"ganda", "", "lug"},
		{"georgian", "ka", "kat"},
		{"german", "de", "deu"},
		{"greek", "el", "ell"},
		{"gujarati", "gu", "guj"},
		{"haitian creole", "ht", ""},
		{"hausa", "ha", "hau"},
		{"hawaiian", "haw", ""},
		{"hebrew", "he", "heb"},
		{"hindi", "hi", "hin"},
		{"hungarian", "hu", "hun"},
		{"icelandic", "is", "isl"},
		{"igbo", "", "ibo"},
		{"indonesian", "id", "ind"},
		{"irish", "", "gle"},
		{"italian", "it", "ita"},
		{"japanese", "ja", "jpn"},
		{"javanese", "jw", "jav"},
		{"kabuverdianu", "", "kea"},
		{"kannada", "kn", "kan"},
		{"kazakh", "kk", "kaz"},
		{"khmer", "km", "khm"},
		{"korean", "ko", "kor"},
		{"kurdish", "", "kur"},
		{"kyrgyz", "", "kir"},
		{"lao", "lo", "lao"},
		{"latin", "la", ""},
		{"latvian", "lv", "lav"},
		{"lingala", "ln", "lin"},
		{"lithuanian", "lt", "lit"},
		{"luo", "", "luo"},
		{"luxembourgish", "lb", "ltz"},
		{"macedonian", "mk", "mkd"},
		{"malagasy", "mg", ""},
		{"malay", "ms", "msa"},
		{"malayalam", "ml", "mal"},
		{"maltese", "mt", "mlt"},
		{"maori", "mi", "mri"},
		{"marathi", "mr", "mar"},
		{"mongolian", "mn", "mon"},
		{"myanmar", "my", "mya"},
		{"nepali", "ne", "nep"},
		{"northern sotho", "", "nso"},
		{"norwegian", "no", "nor"},
		{"nynorsk", "nn", ""},
		{"occitan", "oc", "oci"},
		{"odia", "", "ori"},
		{"pashto", "ps", "pus"},
		{"persian", "fa", "fas"},
		{"polish", "pl", "pol"},
		{"portuguese", "pt", "por"},
		{"punjabi", "pa", "pan"},
		{"romanian", "ro", "ron"},
		{"russian", "ru", "rus"},
		{"sanskrit", "sa", ""},
		{"serbian", "sr", "srp"},
		{"shona", "sn", "sna"},
		{"sindhi", "sd", "snd"},
		{"sinhala", "si", ""},
		{"slovak", "sk", "slk"},
		{"slovenian", "sl", "slv"},
		{"somali", "so", "som"},
		{"spanish", "es", "spa"},
		{"sundanese", "su", ""},
		{"swahili", "sw", "swa"},
		{"swedish", "sv", "swe"},
		{"tagalog", "tl", "fil"},
		{"tajik", "tg", "tgk"},
		{"tamil", "ta", "tam"},
		{"tatar", "tt", ""},
		{"telugu", "te", "tel"},
		{"thai", "th", "tha"},
		{"tibetan", "bo", ""},
		{"turkish", "tr", "tur"},
		{"turkmen", "tk", ""},
		{"ukrainian", "uk", "ukr"},
		{"umbundu", "", "umb"},
		{"urdu", "ur", "urd"},
		{"uzbek", "uz", "uzb"},
		{"vietnamese", "vi", "vie"},
		{"welsh", "cy", "cym"},
		{"wolof", "", "wol"},
		{"xhosa", "", "xho"},
		{"yiddish", "yi", ""},
		{"yoruba", "yo", ""},
		{"zulu", "", "zul"},
	}
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LanguageCode returns the whisper (OpenAI) and three-letter (ElevenLabs)
// codes for a language name or code. Either is empty if the service does
// not support the language.
func LanguageCode(name string) (string, string) {
	if l := lookup(name); l != nil {
		return l.whisper, l.scribe
	}
	return "", ""
}

// LanguageName returns the english name for a language name or code, or
// an empty string if the language is not recognized
func LanguageName(name string) string {
	if l := lookup(name); l != nil {
		return l.name
	}
	return ""
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func lookup(name string) *language {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	for i := range languages {
		l := &languages[i]
		if l.name == name || l.whisper == name || l.scribe == name {
			return l
		}
	}
	return nil
}
