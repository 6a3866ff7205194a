package service

// QRCodeService generates QR code images for storefront links.
type QRCodeService interface {
	// GenerateLinkQR renders url as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
