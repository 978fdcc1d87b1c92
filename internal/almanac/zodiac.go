package almanac

// ZodiacSigns in ecliptic order, 30 degrees each starting at 0° Aries
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Elements
const (
	ElementFire  = "Fire"
	ElementEarth = "Earth"
	ElementAir   = "Air"
	ElementWater = "Water"
)

// Modalities
const (
	ModalityCardinal = "Cardinal"
	ModalityFixed    = "Fixed"
	ModalityMutable  = "Mutable"
)

// signElements maps each sign to its classical element
var signElements = map[string]string{
	"Aries": ElementFire, "Leo": ElementFire, "Sagittarius": ElementFire,
	"Taurus": ElementEarth, "Virgo": ElementEarth, "Capricorn": ElementEarth,
	"Gemini": ElementAir, "Libra": ElementAir, "Aquarius": ElementAir,
	"Cancer": ElementWater, "Scorpio": ElementWater, "Pisces": ElementWater,
}

// signModalities maps each sign to its modality
var signModalities = map[string]string{
	"Aries": ModalityCardinal, "Cancer": ModalityCardinal,
	"Libra": ModalityCardinal, "Capricorn": ModalityCardinal,
	"Taurus": ModalityFixed, "Leo": ModalityFixed,
	"Scorpio": ModalityFixed, "Aquarius": ModalityFixed,
	"Gemini": ModalityMutable, "Virgo": ModalityMutable,
	"Sagittarius": ModalityMutable, "Pisces": ModalityMutable,
}

// SignFromLongitude maps an ecliptic longitude to its zodiac sign
func SignFromLongitude(longitude float64) string {
	idx := int(NormalizeDegrees(longitude)/30) % 12
	return ZodiacSigns[idx]
}

// SignElement returns the element of a sign ("" for unknown signs)
func SignElement(sign string) string {
	return signElements[sign]
}

// SignModality returns the modality of a sign ("" for unknown signs)
func SignModality(sign string) string {
	return signModalities[sign]
}
