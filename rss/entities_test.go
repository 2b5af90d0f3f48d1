package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validate is callable on hand-built values, not just parsed ones; the
// invariants hold regardless of how an entity came to be.

func TestEnclosureValidate(t *testing.T) {
	assert.NoError(t, (&Enclosure{Url: "http://x/a.mp3", Length: 0, MediaType: "audio/mpeg"}).Validate())
	assert.Error(t, (&Enclosure{Url: "http://x/a.mp3", Length: -1, MediaType: "audio/mpeg"}).Validate())
}

func TestCloudValidateProtocols(t *testing.T) {
	for _, protocol := range []string{"HTTP-POST", "http-post", "XML-RPC", "xml-rpc", "SOAP 1.1", "soap"} {
		cloud := &Cloud{Domain: "d", Port: 80, Path: "/p", RegisterProcedure: "r", Protocol: protocol}
		assert.NoError(t, cloud.Validate(), "protocol: %s", protocol)
	}
	for _, protocol := range []string{"", "ftp", "SOAP", "HTTP-GET"} {
		cloud := &Cloud{Domain: "d", Port: 80, Path: "/p", RegisterProcedure: "r", Protocol: protocol}
		assert.Error(t, cloud.Validate(), "protocol: %s", protocol)
	}
}

func TestImageValidateBounds(t *testing.T) {
	ok := &Image{Url: "u", Title: "t", Link: "l", Width: 144, Height: 400}
	assert.NoError(t, ok.Validate())

	tooWide := &Image{Url: "u", Title: "t", Link: "l", Width: 145, Height: 31}
	assert.Error(t, tooWide.Validate())

	tooTall := &Image{Url: "u", Title: "t", Link: "l", Width: 88, Height: 401}
	assert.Error(t, tooTall.Validate())
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, (&Item{Title: "t"}).Validate())
	assert.NoError(t, (&Item{Description: "d"}).Validate())
	assert.Error(t, (&Item{Link: "http://x/"}).Validate())
}

func TestChannelValidate(t *testing.T) {
	base := Channel{Title: "t", Link: "l", Description: "d"}
	assert.NoError(t, base.Validate())

	tooManyHours := base
	for hour := 0; hour < 25; hour++ {
		tooManyHours.SkipHours = append(tooManyHours.SkipHours, hour%24)
	}
	assert.Error(t, tooManyHours.Validate())

	badHour := base
	badHour.SkipHours = []int{3, 24}
	assert.Error(t, badHour.Validate())

	tooManyDays := base
	tooManyDays.SkipDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday"}
	assert.Error(t, tooManyDays.Validate())

	negativeTtl := base
	ttl := -1
	negativeTtl.Ttl = &ttl
	assert.Error(t, negativeTtl.Validate())

	zeroTtl := base
	ttl0 := 0
	zeroTtl.Ttl = &ttl0
	assert.NoError(t, zeroTtl.Validate())
}

func TestFeedValidateVersion(t *testing.T) {
	assert.NoError(t, (&Feed{Version: "2.0"}).Validate())
	assert.Error(t, (&Feed{Version: "0.92"}).Validate())
	assert.Error(t, (&Feed{}).Validate())
}
