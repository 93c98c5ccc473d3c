package task

import (
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// TranslationText is the text returned from a translator for each of the
// artifacts of a transcription. Any of them may be empty.
type TranslationText struct {
	Subtitles  string
	Continuous string
	Paced      string
}

// Translated is the output of a translation
type Translated struct {
	Cues      []*schema.Cue
	Artifacts []Artifact

	// Skew is set when the translated subtitles do not line up with the
	// source. It is a warning, the artifacts are still produced.
	Skew error
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Translation rebuilds translated text into artifacts named after the
// source with a language suffix: <name>_<lang>.srt, <name>_NR_<lang>.txt
// and <name>_R_<lang>.txt. The subtitles are recovered with srt.Reformat
// and compared against the source cues with srt.CheckSkew.
func Translation(name, lang string, source []*schema.Cue, text TranslationText, tolerance int, opt ...srt.Opt) (*Translated, error) {
	if name == "" {
		return nil, errors.ErrBadParameter.With("missing artifact name")
	} else if lang = strings.TrimSpace(lang); lang == "" {
		return nil, errors.ErrBadParameter.With("missing language")
	} else if tolerance < 0 {
		return nil, errors.ErrBadParameter.Withf("tolerance %d is negative", tolerance)
	}

	result := new(Translated)
	if strings.TrimSpace(text.Subtitles) != "" {
		doc, cues, err := srt.Reformat(text.Subtitles, opt...)
		if err != nil {
			return nil, err
		}
		result.Cues = cues
		result.Artifacts = append(result.Artifacts, Artifact{
			Name: name + "_" + lang + extSubtitle,
			Data: []byte(doc),
		})
	}
	if text.Continuous != "" {
		result.Artifacts = append(result.Artifacts, Artifact{
			Name: name + suffixNoBreak + "_" + lang + extText,
			Data: []byte(text.Continuous),
		})
	}
	if text.Paced != "" {
		result.Artifacts = append(result.Artifacts, Artifact{
			Name: name + suffixBreak + "_" + lang + extText,
			Data: []byte(text.Paced),
		})
	}
	if len(result.Artifacts) == 0 {
		return nil, schema.ErrInputMissing.With("no translated text")
	}

	// Compare block counts when subtitles were translated
	if strings.TrimSpace(text.Subtitles) != "" {
		result.Skew = srt.CheckSkew(source, result.Cues, tolerance)
	}

	// Return success
	return result, nil
}

// TranslationArchive returns the name of the archive which bundles the
// artifacts of a translation
func TranslationArchive(name, lang string) string {
	return name + "_" + lang + extArchive
}
