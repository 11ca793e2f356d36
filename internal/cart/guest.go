package cart

import (
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/models"

	"github.com/shopspring/decimal"
)

// Panier invité : persisté uniquement dans la session du navigateur, jamais
// fusionné avec le panier serveur après connexion (comportement historique
// conservé tel quel).

func GetGuestCart(cs *clientstore.Client) models.Cart {
	var cart models.Cart
	cs.GetJSON(clientstore.KeyGuestCart, &cart)
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart
}

func saveGuestCart(cs *clientstore.Client, cart models.Cart) models.Cart {
	recalc(&cart)
	cs.SetJSON(clientstore.KeyGuestCart, cart)
	return cart
}

// AddGuestItem ajoute un produit au panier invité. La quantité finale est
// bornée à [1, stock disponible].
func AddGuestItem(cs *clientstore.Client, product models.Product, quantity int) models.Cart {
	cart := GetGuestCart(cs)

	if quantity < 1 {
		quantity = 1
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity = clampQuantity(cart.Items[i].Quantity+quantity, cart.Items[i].Available)
			return saveGuestCart(cs, cart)
		}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  clampQuantity(quantity, product.Quantity),
		Available: product.Quantity,
		Image:     product.FirstImageURL(),
	})
	return saveGuestCart(cs, cart)
}

// UpdateGuestQuantity fixe la quantité d'une ligne. Descendre sous 1 est un
// no-op, monter au-dessus du stock plafonne au stock.
func UpdateGuestQuantity(cs *clientstore.Client, productID string, quantity int) models.Cart {
	cart := GetGuestCart(cs)
	if quantity < 1 {
		return cart
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = clampQuantity(quantity, cart.Items[i].Available)
			return saveGuestCart(cs, cart)
		}
	}
	return cart
}

func RemoveGuestItem(cs *clientstore.Client, productID string) models.Cart {
	cart := GetGuestCart(cs)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return saveGuestCart(cs, cart)
}

func clampQuantity(quantity, available int) int {
	if quantity < 1 {
		return 1
	}
	if available > 0 && quantity > available {
		return available
	}
	return quantity
}

// recalc refait sous-totaux et total en décimal pour éviter les dérives
// d'arrondi sur les montants en roupies
func recalc(cart *models.Cart) {
	total := decimal.Zero
	for i := range cart.Items {
		subtotal := decimal.NewFromFloat(cart.Items[i].Price).
			Mul(decimal.NewFromInt(int64(cart.Items[i].Quantity)))
		cart.Items[i].Subtotal, _ = subtotal.Float64()
		total = total.Add(subtotal)
	}
	cart.Total, _ = total.Float64()
}

// --- Wishlist invité : présence/absence uniquement, pas de quantité ---

func GetGuestWishlist(cs *clientstore.Client) models.Wishlist {
	var wishlist models.Wishlist
	cs.GetJSON(clientstore.KeyGuestWishlist, &wishlist)
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return wishlist
}

func AddGuestWishlistItem(cs *clientstore.Client, product models.Product) models.Wishlist {
	wishlist := GetGuestWishlist(cs)
	for _, item := range wishlist.Items {
		if item.ProductID == product.ID {
			return wishlist // déjà présent
		}
	}
	wishlist.Items = append(wishlist.Items, models.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Image:     product.FirstImageURL(),
	})
	cs.SetJSON(clientstore.KeyGuestWishlist, wishlist)
	return wishlist
}

func RemoveGuestWishlistItem(cs *clientstore.Client, productID string) models.Wishlist {
	wishlist := GetGuestWishlist(cs)
	kept := wishlist.Items[:0]
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	wishlist.Items = kept
	cs.SetJSON(clientstore.KeyGuestWishlist, wishlist)
	return wishlist
}
