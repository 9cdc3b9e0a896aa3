// Package qr wraps QR generation into the base64 data URL form poster
// templates embed directly in HTML.
package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSizePx keeps printed codes scannable at poster viewing distance.
const DefaultSizePx = 400

// DataURL encodes url as a PNG QR code and returns it as a data URL.
// Error-correction level M balances density against print tolerance. A
// failure here aborts the whole render; there is no fallback.
func DataURL(url string, sizePx int) (string, error) {
	if sizePx <= 0 {
		sizePx = DefaultSizePx
	}
	png, err := qrcode.Encode(url, qrcode.Medium, sizePx)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
