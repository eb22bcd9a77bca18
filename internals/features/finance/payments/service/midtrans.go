package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"edufranchise_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans sets up the Snap client. Call once at startup.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a Snap transaction for a tuition payment.
// Midtrans amounts are whole currency units, not cents.
func GenerateSnapToken(p *model.PaymentModel, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmountCents / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
