package constants

import "os"

// One quarter note spans 16 sixty-fourth notes, the grid unit of the
// PNote notation.
const SixtyfourthsPerBeat = 16

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetAwsRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}
