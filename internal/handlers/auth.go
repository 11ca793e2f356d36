package handlers

import (
	"context"
	"log"
	"net/http"

	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/session"
	"koovappally_front_end/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

//
// 🟢 POST /auth/login
//
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := api.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Login failed. Please try again.")})
		return
	}

	cs := clientstore.FromContext(c)
	if err := session.Login(cs, resp.Token, resp.User, resp.User.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	// La destination post-login capturée avec une intention d'ajout prime
	// sur la destination par rôle
	redirect := cs.GetString(clientstore.KeyLoginRedirect)
	cs.Delete(clientstore.KeyLoginRedirect)
	if redirect == "" {
		if resp.User.Role == "admin" {
			redirect = "/admin/dashboard"
		} else {
			redirect = "/"
		}
	}

	cache.InvalidateCounts(resp.User.ID)

	if err := cs.Save(); err != nil {
		log.Printf("❌ Erreur sauvegarde session après login: %v", err)
	}

	log.Printf("✅ Connexion réussie: %s (%s)", resp.User.Email, resp.User.Role)
	c.JSON(http.StatusOK, gin.H{"user": resp.User, "redirect": redirect})
}

//
// 🟢 POST /auth/register
//
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	errors := validation.RegisterSchema().Validate(map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	})
	if len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	if err := api.Register(input.Name, input.Email, input.Password, input.Phone); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Registration failed. Please try again.")})
		return
	}

	log.Printf("✅ Inscription réussie: %s", input.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please log in.", "redirect": "/login"})
}

//
// 🟢 POST /auth/logout
//
func Logout(c *gin.Context) {
	cs := clientstore.FromContext(c)
	state := session.CheckAuthStatus(cs)
	if state.User != nil {
		cache.InvalidateCounts(state.User.ID)
	}
	session.Logout(cs)
	if err := cs.Save(); err != nil {
		log.Printf("❌ Erreur sauvegarde session après logout: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

//
// 🟢 GET /auth/:provider — départ du flux fédéré (Google)
//
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🟢 GET /auth/:provider/callback — retour du provider, puis échange du
// profil contre un token de l'API marketplace
//
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := api.GoogleSignIn(gothUser.Email, gothUser.Name, gothUser.UserID)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Google sign-in failed. Please try again.")})
		return
	}

	cs := clientstore.FromContext(c)
	if err := session.Login(cs, resp.Token, resp.User, resp.User.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	redirect := cs.GetString(clientstore.KeyLoginRedirect)
	cs.Delete(clientstore.KeyLoginRedirect)
	if redirect == "" {
		if resp.User.Role == "admin" {
			redirect = "/admin/dashboard"
		} else {
			redirect = "/"
		}
	}

	cache.InvalidateCounts(resp.User.ID)

	if err := cs.Save(); err != nil {
		log.Printf("❌ Erreur sauvegarde session après login Google: %v", err)
	}

	log.Printf("✅ Connexion Google réussie: %s", resp.User.Email)
	c.Redirect(http.StatusFound, redirect)
}

//
// 🟢 GET /me — état d'authentification courant, pour le shell de page
//
func Me(c *gin.Context) {
	cs := clientstore.FromContext(c)
	state := session.CheckAuthStatus(cs)
	if err := cs.Save(); err != nil {
		log.Printf("⚠️ Erreur sauvegarde session: %v", err)
	}
	if !state.Authenticated {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          state.User,
		"role":          state.Role,
	})
}

//
// 🟢 PUT /profile
//
func UpdateProfile(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cs := clientstore.FromContext(c)
	state := session.CheckAuthStatus(cs)

	user, err := api.UpdateProfile(state.Token, input.Name, input.Email, input.Phone)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Profile update failed.")})
		return
	}

	// La copie en session suit le profil renvoyé par le backend
	if err := cs.SetJSON(clientstore.KeyUser, user); err == nil {
		if err := cs.Save(); err != nil {
			log.Printf("⚠️ Erreur sauvegarde session: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "message": "Profile updated successfully"})
}

//
// 🟢 PUT /change-password
//
func ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if msg := validation.RegisterSchema().ValidateField("password", input.NewPassword); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	state := session.CheckAuthStatus(clientstore.FromContext(c))
	if err := api.ChangePassword(state.Token, input.CurrentPassword, input.NewPassword); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Password change failed.")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
