package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(base string, restaurantID int64) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (g DefaultQRGenerator) Generate(base string, restaurantID int64) ([]byte, error) {
	link := fmt.Sprintf("%s/restaurants/%d", base, restaurantID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
