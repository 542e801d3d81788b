package request

import (
	"dealership-api/internal/usecase/commands"
)

type TestDriveEmailRequest struct {
	ClientEmail       string `json:"clientEmail" binding:"required,email"`
	ClientName        string `json:"clientName" binding:"required"`
	CarID             int64  `json:"carId" binding:"required"`
	TestDriveDateTime string `json:"testDriveDateTime" binding:"required"`
	DealerAddress     string `json:"dealerAddress" binding:"required"`
	DealerPhone       string `json:"dealerPhone" binding:"required"`
}

func (r *TestDriveEmailRequest) ToCommand() commands.TestDriveRequest {
	return commands.TestDriveRequest{
		ClientEmail:       r.ClientEmail,
		ClientName:        r.ClientName,
		CarID:             r.CarID,
		TestDriveDateTime: r.TestDriveDateTime,
		DealerAddress:     r.DealerAddress,
		DealerPhone:       r.DealerPhone,
	}
}
