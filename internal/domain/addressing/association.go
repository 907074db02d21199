package addressing

import (
	"strings"

	"addressing/internal/domain/entity"
	"addressing/internal/errors"
)

// ErrSuffixExhausted is returned when a group already uses suffix Z.
var ErrSuffixExhausted = errors.New("dissociate suffixes exhausted")

// PropagateAssociate copies the Main building's address block verbatim.
func PropagateAssociate(main, building *entity.Building) {
	copyAddressBlock(main, building)
	building.HouseNo = main.HouseNo
}

// PropagateDissociate copies the Main building's address block and appends suffix.
func PropagateDissociate(main, building *entity.Building, suffix string) {
	copyAddressBlock(main, building)
	building.HouseNo = main.HouseNo + "/" + suffix
}

func copyAddressBlock(main, building *entity.Building) {
	building.MetricAddress = main.MetricAddress
	if main.RoadID != nil {
		roadID := *main.RoadID
		building.RoadID = &roadID
	} else {
		building.RoadID = nil
	}
	building.AssociateRoadName = main.AssociateRoadName
	building.RoadWidth = main.RoadWidth
	building.RoadType = main.RoadType
	building.RoadLane = main.RoadLane
	building.Direction = main.Direction
	building.ToleName = main.ToleName
	building.OwnerName = main.OwnerName
	building.NeedsReview = main.NeedsReview
}

// NextDissociateSuffix returns the letter after the highest suffix used by
// siblings, ignoring the building with id excludeID. The first suffix is A.
func NextDissociateSuffix(siblings []*entity.Building, excludeID int64) (string, error) {
	var highest byte
	for _, sibling := range siblings {
		if sibling.ID == excludeID {
			continue
		}
		if letter, ok := DissociateSuffix(sibling.HouseNo); ok && letter > highest {
			highest = letter
		}
	}

	return suffixAfter(highest)
}

// DissociateSuffix returns the trailing letter of a dissociate house number.
func DissociateSuffix(houseNo string) (byte, bool) {
	idx := strings.LastIndex(houseNo, "/")
	if idx < 0 || idx != len(houseNo)-2 {
		return 0, false
	}

	letter := houseNo[len(houseNo)-1]
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}

	return letter, true
}

// SuffixSequence hands out consecutive suffixes within one Main building's group.
type SuffixSequence struct {
	last byte
}

// NewSuffixSequence starts after the highest suffix already used by siblings.
func NewSuffixSequence(siblings []*entity.Building) *SuffixSequence {
	seq := &SuffixSequence{}
	for _, sibling := range siblings {
		if letter, ok := DissociateSuffix(sibling.HouseNo); ok && letter > seq.last {
			seq.last = letter
		}
	}

	return seq
}

// Next returns the next unused suffix.
func (s *SuffixSequence) Next() (string, error) {
	suffix, err := suffixAfter(s.last)
	if err != nil {
		return "", err
	}
	s.last = suffix[0]

	return suffix, nil
}

func suffixAfter(letter byte) (string, error) {
	if letter == 0 {
		return "A", nil
	}
	if letter >= 'Z' {
		return "", errors.WithStack(ErrSuffixExhausted)
	}

	return string(letter + 1), nil
}
