package admin

import (
	"net/http"
	"strconv"
	"sync"

	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"
	"koovappally_front_end/internal/validation"

	"github.com/gin-gonic/gin"
)

var intakeStatuses = map[string]bool{
	"pending":  true,
	"received": true,
	"verified": true,
	"rejected": true,
}

var vendorStatuses = map[string]bool{
	"active":    true,
	"inactive":  true,
	"suspended": true,
}

func vendorForm(v models.Vendor) map[string]string {
	return map[string]string{
		"name":                         v.Name,
		"contact.phone":                v.Contact.Phone,
		"contact.email":                v.Contact.Email,
		"contact.address.pincode":      v.Contact.Address.Pincode,
		"businessDetails.gstNumber":    v.BusinessDetails.GSTNumber,
		"businessDetails.panNumber":    v.BusinessDetails.PANNumber,
		"businessDetails.businessType": v.BusinessDetails.BusinessType,
	}
}

func intakeForm(i models.WoodIntake) map[string]string {
	return map[string]string{
		"vendorId":                        i.VendorID,
		"woodDetails.type":                i.WoodDetails.Type,
		"woodDetails.quality":             i.WoodDetails.Quality,
		"woodDetails.condition":           i.WoodDetails.Condition,
		"woodDetails.dimensions.length":   strconv.FormatFloat(i.WoodDetails.Dimensions.Length, 'f', -1, 64),
		"woodDetails.dimensions.quantity": strconv.Itoa(i.WoodDetails.Dimensions.Quantity),
		"costDetails.unitPrice":           strconv.FormatFloat(i.CostDetails.UnitPrice, 'f', -1, 64),
		"costDetails.paymentStatus":       i.CostDetails.PaymentStatus,
		"costDetails.paymentMethod":       i.CostDetails.PaymentMethod,
		"logistics.deliveryDate":          i.Logistics.DeliveryDate,
		"logistics.deliveryMethod":        i.Logistics.DeliveryMethod,
		"notes":                           i.Notes,
	}
}

//
// 🟢 GET /admin/vendors — la page fournisseurs charge vendors, réceptions
// et stats en parallèle ; chaque bloc dégrade indépendamment
//
func GetVendorsPage(c *gin.Context) {
	state := middleware.AuthFromContext(c)

	var (
		wg        sync.WaitGroup
		vendors   []models.Vendor
		intakes   []models.WoodIntake
		stats     *models.VendorStats
		vendorErr error
		intakeErr error
		statsErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		vendors, vendorErr = api.ListVendors(state.Token)
	}()
	go func() {
		defer wg.Done()
		intakes, intakeErr = api.ListWoodIntakes(state.Token)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = api.VendorStats(state.Token)
	}()
	wg.Wait()

	resp := gin.H{}
	if vendorErr != nil {
		resp["vendors"] = []models.Vendor{}
		resp["vendorsError"] = apiMessage(vendorErr, "Failed to load vendors")
	} else {
		resp["vendors"] = vendors
	}
	if intakeErr != nil {
		resp["woodIntakes"] = []models.WoodIntake{}
		resp["intakesError"] = apiMessage(intakeErr, "Failed to load wood intakes")
	} else {
		resp["woodIntakes"] = intakes
	}
	if statsErr != nil {
		resp["statsError"] = apiMessage(statsErr, "Failed to load vendor stats")
	} else {
		resp["stats"] = stats
	}

	c.JSON(http.StatusOK, resp)
}

//
// 🟢 POST /admin/vendors
//
func CreateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errors := validation.VendorSchema().Validate(vendorForm(vendor)); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.CreateVendor(state.Token, vendor); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to create vendor")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Vendor created successfully"})
}

//
// 🟢 PUT /admin/vendors/:id
//
func UpdateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if vendor.Status != "" && !vendorStatuses[vendor.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a valid vendor status"})
		return
	}
	if errors := validation.VendorSchema().Validate(vendorForm(vendor)); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.UpdateVendor(state.Token, c.Param("id"), vendor); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to update vendor")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor updated successfully"})
}

//
// 🟢 POST /admin/vendors/validate-field — validation au blur, même table
// de règles que le submit pour que les deux ne divergent jamais
//
func ValidateVendorField(c *gin.Context) {
	var input struct {
		Form  string `json:"form"` // vendor | intake
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	var schema *validation.Schema
	switch input.Form {
	case "intake":
		schema = validation.WoodIntakeSchema()
	default:
		schema = validation.VendorSchema()
	}

	c.JSON(http.StatusOK, gin.H{"error": schema.ValidateField(input.Field, input.Value)})
}

//
// 🟢 POST /admin/intakes
//
func CreateWoodIntake(c *gin.Context) {
	var intake models.WoodIntake
	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errors := validation.WoodIntakeSchema().Validate(intakeForm(intake)); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	// Le total affiché est recalculé, le backend reste source de vérité
	intake.CostDetails.TotalCost = intake.CostDetails.UnitPrice * float64(intake.WoodDetails.Dimensions.Quantity)

	state := middleware.AuthFromContext(c)
	if err := api.CreateWoodIntake(state.Token, intake); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to record wood intake")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Wood intake recorded successfully"})
}

//
// 🟢 PUT /admin/intakes/:id/status
//
func UpdateIntakeStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !intakeStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a valid intake status"})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.UpdateIntakeStatus(state.Token, c.Param("id"), input.Status); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to update intake status")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Intake status updated"})
}
