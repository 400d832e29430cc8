// Package advice produces the tips shown alongside a recommendation.
package advice

import (
	"fmt"
	"strings"
	"time"
)

// SecretCode unlocks SecretTip when entered before a recommendation.
const SecretCode = "fashion101"

// SecretTip is the hidden styling tip.
const SecretTip = "Mix textures! Pair cotton with denim or knits for visual interest."

// TemperatureAdvice returns layering advice for a temperature in Celsius.
func TemperatureAdvice(tempC float64) string {
	switch {
	case tempC < 0:
		return "Extreme cold! Prioritize thermal wear and insulated layers."
	case tempC < 10:
		return "Cold weather. Wear full sleeves, coats, and warm footwear."
	case tempC < 20:
		return "Mild chill. Layer up moderately with breathable outerwear."
	case tempC < 30:
		return "Comfortable temperature. Dress flexibly."
	case tempC < 40:
		return "Warm weather. Wear light, breathable fabrics and stay hydrated."
	default:
		return "Extremely hot! Avoid dark colors and heavy clothing. Stay cool!"
	}
}

type conditionRule struct {
	keyword string
	text    string
}

// Rules are checked in order; the first keyword contained in the condition wins.
var weatherTips = []conditionRule{
	{"rain", "Don't forget to carry an umbrella or raincoat!"},
	{"sunny", "Apply sunscreen and wear light fabrics."},
	{"cloud", "Might be a gloomy day. Bright colors can lift your mood!"},
	{"snow", "Protect yourself from frostbite! Layer up and keep dry."},
	{"windy", "A windbreaker or a snug jacket would be a good idea!"},
}

var colorStyles = []conditionRule{
	{"rain", "Try earthy tones like olive or brown with waterproof fabrics."},
	{"sunny", "Go for bright colors like yellow or turquoise to complement the sunlight."},
	{"cloud", "Warm colors like orange or coral will cheer you up on cloudy days."},
	{"snow", "Whites and blues with reflective accessories look stunning in snow."},
}

func match(rules []conditionRule, condition, fallback string) string {
	c := strings.ToLower(condition)
	for _, r := range rules {
		if strings.Contains(c, r.keyword) {
			return r.text
		}
	}
	return fallback
}

// WeatherTip returns a practical tip for a free-text weather condition.
func WeatherTip(condition string) string {
	return match(weatherTips, condition, "Stay comfortable and adapt as needed.")
}

// ColorStyle suggests a color palette for a free-text weather condition.
func ColorStyle(condition string) string {
	return match(colorStyles, condition, "Neutral tones like beige, grey, or navy are safe and elegant.")
}

// SeasonalTip returns the style tip for the (northern hemisphere) season of month.
func SeasonalTip(month time.Month) string {
	switch month {
	case time.March, time.April, time.May:
		return "Spring is here! Embrace lighter layers and floral patterns."
	case time.June, time.July, time.August:
		return "Summer heat calls for breathable fabrics like linen and cotton. Stay cool!"
	case time.September, time.October, time.November:
		return "Autumn leaves are falling! Layer up with knits and earthy tones."
	default:
		return "Winter chill! Focus on warmth with wools, down, and insulated wear."
	}
}

// Greeting returns the day-of-week line and a time-of-day message for t.
func Greeting(t time.Time) (string, string) {
	day := fmt.Sprintf("Happy %s!", t.Weekday())
	switch h := t.Hour(); {
	case h < 12:
		return day, "Good Morning! Start your day with great style!"
	case h < 18:
		return day, "Good Afternoon! Keep your outfit cool and comfortable."
	default:
		return day, "Good Evening! Time for something cozy or classy."
	}
}
