package utils

import (
	"fmt"
	"math/rand"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Peter", "Grace", "James", "Mary", "John", "Faith", "David", "Joy",
	"Brian", "Mercy", "Kevin", "Esther", "Dennis", "Alice", "Samuel", "Ruth",
}
var commonLastNames = []string{
	"Evance", "Otieno", "Wanjiku", "Mwangi", "Achieng", "Kamau", "Njeri",
	"Odhiambo", "Kiptoo", "Wairimu", "Omondi", "Chebet",
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func GenerateRandomPhoneNumber() string {
	return fmt.Sprintf("+2547%08d", rand.Intn(100000000))
}

// GenerateRandomUser builds a regular user for seeding. The username gets a
// random numeric suffix so repeated runs rarely collide; the database unique
// constraint catches the rest.
func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]
	username := fmt.Sprintf("%s-%d", Slugify(firstName, lastName), rand.Intn(10000))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	sex := domain.SexMale
	if rand.Intn(2) == 0 {
		sex = domain.SexFemale
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        username + "@" + emailDomainName,
		PhoneNumber:  GenerateRandomPhoneNumber(),
		Sex:          sex,
	}

	return user, nil
}
