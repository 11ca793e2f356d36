package validation

import "regexp"

// Schémas des formulaires du back-office et du compte client. Les chemins
// suivent la structure du payload JSON attendu par le backend.

var (
	woodTypes       = []string{"teak", "rosewood", "pine", "oak", "cedar", "mahogany", "bamboo", "plywood", "other"}
	woodQualities   = []string{"premium", "grade_a", "grade_b", "standard"}
	woodConditions  = []string{"excellent", "good", "fair", "poor"}
	paymentStatuses = []string{"pending", "partial", "paid"}
	paymentMethods  = []string{"cash", "bank_transfer", "cheque", "upi"}
	deliveryMethods = []string{"pickup", "delivery"}
	businessTypes   = []string{"individual", "company", "partnership"}

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// VendorSchema : création et édition d'un fournisseur de bois
func VendorSchema() *Schema {
	return NewSchema().
		Field("name",
			Required("Vendor name is required"),
			MinLength(2, "Vendor name must be at least 2 characters")).
		Field("contact.phone",
			Required("Phone number is required"),
			MobileNumber("Enter a valid 10-digit mobile number")).
		Field("contact.email",
			Optional(Email("Enter a valid email address"))).
		Field("contact.address.pincode",
			Optional(Pincode("Enter a valid 6-digit pincode"))).
		Field("businessDetails.gstNumber",
			Optional(GSTNumber("Enter a valid GST number"))).
		Field("businessDetails.panNumber",
			Optional(PANNumber("Enter a valid PAN number"))).
		Field("businessDetails.businessType",
			Optional(OneOf(businessTypes, "Select a valid business type")))
}

// WoodIntakeSchema : enregistrement d'une réception de bois
func WoodIntakeSchema() *Schema {
	return NewSchema().
		Field("vendorId",
			Required("Select a vendor")).
		Field("woodDetails.type",
			Required("Select a wood type"),
			OneOf(woodTypes, "Select a valid wood type")).
		Field("woodDetails.quality",
			Optional(OneOf(woodQualities, "Select a valid quality grade"))).
		Field("woodDetails.condition",
			Optional(OneOf(woodConditions, "Select a valid condition"))).
		Field("woodDetails.dimensions.length",
			Required("Length is required"),
			NumberRange(0.1, 100, "Length must be between 0.1 and 100 ft")).
		Field("woodDetails.dimensions.quantity",
			Required("Quantity is required"),
			NumberRange(1, 10000, "Quantity must be between 1 and 10,000")).
		Field("costDetails.unitPrice",
			Required("Unit price is required"),
			NumberRange(1, 100000, "Unit price must be between ₹1 and ₹100,000")).
		Field("costDetails.paymentStatus",
			Optional(OneOf(paymentStatuses, "Select a valid payment status"))).
		Field("costDetails.paymentMethod",
			Optional(OneOf(paymentMethods, "Select a valid payment method"))).
		Field("logistics.deliveryDate",
			Optional(DateWithinDays(365, "Delivery date must be within the next 365 days"))).
		Field("logistics.deliveryMethod",
			Optional(OneOf(deliveryMethods, "Select a valid delivery method"))).
		Field("notes",
			MaxLength(500, "Notes cannot exceed 500 characters"))
}

// AddressSchema : carnet d'adresses du client
func AddressSchema() *Schema {
	return NewSchema().
		Field("fullName",
			Required("Full name is required"),
			LettersOnly("Name can only contain letters and spaces")).
		Field("mobileNumber",
			Required("Mobile number is required"),
			MobileNumber("Enter a valid 10-digit mobile number")).
		Field("pincode",
			Required("Pincode is required"),
			Pincode("Enter a valid 6-digit pincode")).
		Field("state",
			Required("State is required")).
		Field("address",
			Required("Address is required")).
		Field("city",
			Required("City is required"))
}

// RegisterSchema : inscription par email et mot de passe
func RegisterSchema() *Schema {
	return NewSchema().
		Field("name",
			Required("Name is required"),
			LettersOnly("Name can only contain letters and spaces")).
		Field("email",
			Required("Email is required"),
			Email("Enter a valid email address")).
		Field("password",
			Required("Password is required"),
			MinLength(8, "Password must be at least 8 characters"),
			ContainsClass(upperRegex, "Password must contain an uppercase letter"),
			ContainsClass(lowerRegex, "Password must contain a lowercase letter"),
			ContainsClass(digitRegex, "Password must contain a number"),
			ContainsClass(specialRegex, "Password must contain a special character"))
}
