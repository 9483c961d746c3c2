package ration

import (
	"fmt"
	"time"
)

// Composite identifiers carry the issue year, the state and district codes
// and a zero padded sequence. The year comes from the clock at generation
// time, so an id minted in January never collides with one minted the
// previous December even though the sequence counters keep running.

// GenerateApplicationID builds a 12 character application id:
// 4-digit year + state code + district code + 4-digit sequence.
func GenerateApplicationID(stateCode, districtCode string, seq int) string {
	return fmt.Sprintf("%d%s%s%04d", time.Now().Year(), stateCode, districtCode, seq)
}

// GenerateRCNo builds a 16 character ration card number:
// 4-digit year + state code + district code + 8-digit sequence.
func GenerateRCNo(stateCode, districtCode string, seq int) string {
	return fmt.Sprintf("%d%s%s%08d", time.Now().Year(), stateCode, districtCode, seq)
}

// GenerateMemberID appends a 1-based, 2-digit member position to the parent
// RC number, producing an 18 character code.
func GenerateMemberID(rcNo string, index int) string {
	return fmt.Sprintf("%s%02d", rcNo, index+1)
}
