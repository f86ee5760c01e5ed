package main

import (
	"flag"
	"fmt"
	"log"

	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/config"
	"axiapac.com/lms/security"
)

func main() {
	userID := flag.Int("user", 0, "LMS user id")
	name := flag.String("name", "", "user name")
	email := flag.String("email", "", "e-mail address")
	role := flag.String("role", model.RoleStudent, "student, staff or admin")
	courseID := flag.Int("course", 0, "course id")
	accountID := flag.Int("account", 0, "account id")
	expires := flag.Int64("expires", 3600, "lifetime in seconds")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	token, err := security.CreateIdentityToken(&security.LmsIdentity{
		ID:        int32(*userID),
		UserName:  *name,
		Email:     *email,
		Role:      *role,
		CourseID:  int32(*courseID),
		AccountID: int32(*accountID),
	}, cfg.SigningSecret, *expires)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
