package controllers

import "encoding/json"

// Cloudinary folders for each kind of blob this API owns.
const (
	avatarFolder  = "portfolioAvatar"
	stackFolder   = "portfolioStack"
	projectFolder = "portfolioProject"
)

// stringList accepts either a single JSON string or an array of strings,
// since clients submit both shapes for stack fields.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = stringList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = stringList(many)
	return nil
}
