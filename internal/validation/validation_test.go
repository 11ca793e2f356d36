package validation

import (
	"testing"
	"time"
)

func TestVendorPhoneTooShort(t *testing.T) {
	errors := VendorSchema().Validate(map[string]string{
		"name":          "Kerala Timber Co",
		"contact.phone": "12345",
	})
	if errors["contact.phone"] != "Enter a valid 10-digit mobile number" {
		t.Errorf("erreur téléphone = %q", errors["contact.phone"])
	}
}

func TestVendorPhoneValid(t *testing.T) {
	errors := VendorSchema().Validate(map[string]string{
		"name":          "Kerala Timber Co",
		"contact.phone": "9876543210",
	})
	if len(errors) != 0 {
		t.Errorf("formulaire valide refusé: %v", errors)
	}
}

func TestVendorPhoneBadPrefix(t *testing.T) {
	// Les mobiles indiens commencent par 6-9
	if msg := VendorSchema().ValidateField("contact.phone", "1234567890"); msg == "" {
		t.Error("préfixe 1 accepté")
	}
}

func TestVendorOptionalFields(t *testing.T) {
	schema := VendorSchema()
	if msg := schema.ValidateField("contact.email", ""); msg != "" {
		t.Errorf("email vide refusé: %q", msg)
	}
	if msg := schema.ValidateField("contact.email", "pas-un-email"); msg == "" {
		t.Error("email invalide accepté")
	}
	if msg := schema.ValidateField("businessDetails.gstNumber", "32AAAAA0000A1Z5"); msg != "" {
		t.Errorf("GST valide refusé: %q", msg)
	}
	if msg := schema.ValidateField("businessDetails.gstNumber", "INVALID"); msg == "" {
		t.Error("GST invalide accepté")
	}
	if msg := schema.ValidateField("businessDetails.panNumber", "ABCDE1234F"); msg != "" {
		t.Errorf("PAN valide refusé: %q", msg)
	}
}

func TestIntakeLengthOutOfRange(t *testing.T) {
	if msg := WoodIntakeSchema().ValidateField("woodDetails.dimensions.length", "150"); msg != "Length must be between 0.1 and 100 ft" {
		t.Errorf("erreur longueur = %q", msg)
	}
	if msg := WoodIntakeSchema().ValidateField("woodDetails.dimensions.length", "20.5"); msg != "" {
		t.Errorf("longueur valide refusée: %q", msg)
	}
}

func TestIntakeUnitPriceAndQuantityBounds(t *testing.T) {
	schema := WoodIntakeSchema()
	if msg := schema.ValidateField("costDetails.unitPrice", "150000"); msg == "" {
		t.Error("prix unitaire > 100 000 accepté")
	}
	if msg := schema.ValidateField("woodDetails.dimensions.quantity", "20000"); msg == "" {
		t.Error("quantité > 10 000 acceptée")
	}
	if msg := schema.ValidateField("woodDetails.dimensions.quantity", "abc"); msg == "" {
		t.Error("quantité non numérique acceptée")
	}
}

func TestIntakeDeliveryDateWindow(t *testing.T) {
	schema := WoodIntakeSchema()
	today := time.Now().Format("2006-01-02")
	if msg := schema.ValidateField("logistics.deliveryDate", today); msg != "" {
		t.Errorf("date du jour refusée: %q", msg)
	}
	past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if msg := schema.ValidateField("logistics.deliveryDate", past); msg == "" {
		t.Error("date passée acceptée")
	}
	farFuture := time.Now().AddDate(0, 0, 400).Format("2006-01-02")
	if msg := schema.ValidateField("logistics.deliveryDate", farFuture); msg == "" {
		t.Error("date au-delà de 365 jours acceptée")
	}
}

func TestIntakeNotesLimit(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	if msg := WoodIntakeSchema().ValidateField("notes", string(long)); msg == "" {
		t.Error("notes > 500 caractères acceptées")
	}
}

func TestIntakeEnums(t *testing.T) {
	schema := WoodIntakeSchema()
	if msg := schema.ValidateField("woodDetails.type", "teak"); msg != "" {
		t.Errorf("type teak refusé: %q", msg)
	}
	if msg := schema.ValidateField("woodDetails.type", "plastic"); msg == "" {
		t.Error("type plastic accepté")
	}
	if msg := schema.ValidateField("costDetails.paymentMethod", "upi"); msg != "" {
		t.Errorf("méthode upi refusée: %q", msg)
	}
}

func TestAddressSchema(t *testing.T) {
	errors := AddressSchema().Validate(map[string]string{
		"fullName":     "Anil Kumar",
		"mobileNumber": "9876543210",
		"pincode":      "686518",
		"state":        "Kerala",
		"address":      "Koovappally PO",
		"city":         "Kanjirappally",
	})
	if len(errors) != 0 {
		t.Errorf("adresse valide refusée: %v", errors)
	}

	errors = AddressSchema().Validate(map[string]string{
		"fullName":     "Anil123",
		"mobileNumber": "98765",
		"pincode":      "12",
	})
	if errors["fullName"] == "" || errors["mobileNumber"] == "" || errors["pincode"] == "" {
		t.Errorf("erreurs attendues sur les trois champs, obtenu %v", errors)
	}
	if errors["state"] == "" {
		t.Error("état manquant non signalé")
	}
}

func TestRegisterPasswordRules(t *testing.T) {
	schema := RegisterSchema()
	cases := map[string]bool{
		"Short1!":      false, // trop court
		"alllower1!aa": false, // pas de majuscule
		"ALLUPPER1!AA": false, // pas de minuscule
		"NoDigits!!aA": false, // pas de chiffre
		"NoSpecial1aA": false, // pas de caractère spécial
		"GoodPass1!":   true,
	}
	for password, valid := range cases {
		msg := schema.ValidateField("password", password)
		if valid && msg != "" {
			t.Errorf("%q refusé: %q", password, msg)
		}
		if !valid && msg == "" {
			t.Errorf("%q accepté", password)
		}
	}
}

func TestFieldAndFormPathsAgree(t *testing.T) {
	// La validation au blur et au submit utilisent la même table : un champ
	// invalide donne le même message par les deux chemins
	schema := VendorSchema()
	form := map[string]string{"name": "Kerala Timber Co", "contact.phone": "12345"}

	fieldMsg := schema.ValidateField("contact.phone", form["contact.phone"])
	formMsg := schema.Validate(form)["contact.phone"]
	if fieldMsg == "" || fieldMsg != formMsg {
		t.Errorf("blur = %q, submit = %q", fieldMsg, formMsg)
	}
}

func TestSetPathNested(t *testing.T) {
	payload := map[string]any{}
	SetPath(payload, "woodDetails.dimensions.length", 20.5)
	SetPath(payload, "woodDetails.type", "teak")
	SetPath(payload, "vendorId", "v1")

	if GetPath(payload, "woodDetails.dimensions.length") != "20.5" {
		t.Errorf("length = %q", GetPath(payload, "woodDetails.dimensions.length"))
	}
	if GetPath(payload, "woodDetails.type") != "teak" {
		t.Errorf("type = %q", GetPath(payload, "woodDetails.type"))
	}
	if GetPath(payload, "absent.path") != "" {
		t.Error("chemin absent doit renvoyer vide")
	}
}
