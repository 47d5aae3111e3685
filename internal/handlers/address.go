package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/services"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// GET /api/addresses/:key
func (ah *AddressHandler) Get(c *gin.Context) {
	address, err := ah.addressService.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}
