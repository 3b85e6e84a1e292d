package component

import "fmt"

// WeaponMode selects the burst the player's weapon emits.
type WeaponMode int

const (
	WeaponSingle WeaponMode = iota
	WeaponTriple
	WeaponSpread
	WeaponHeavy
	WeaponHeavySpread

	weaponModeCount
)

var weaponModeNames = [...]string{
	WeaponSingle:      "single",
	WeaponTriple:      "triple",
	WeaponSpread:      "spread",
	WeaponHeavy:       "heavy",
	WeaponHeavySpread: "heavy_spread",
}

func (m WeaponMode) Valid() bool {
	return m >= 0 && m < weaponModeCount
}

func (m WeaponMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("WeaponMode(%d)", int(m))
	}
	return weaponModeNames[m]
}

func WeaponModes() []WeaponMode {
	return []WeaponMode{WeaponSingle, WeaponTriple, WeaponSpread, WeaponHeavy, WeaponHeavySpread}
}

func ParseWeaponMode(s string) (WeaponMode, bool) {
	for i, name := range weaponModeNames {
		if name == s {
			return WeaponMode(i), true
		}
	}
	return 0, false
}
