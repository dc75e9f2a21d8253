package util
import (
	"os"
	"crypto/rand"
	"golang.org/x/text/unicode/norm"
)

const (
	ShredingCount = 10
)

func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// overwrite a secret file with random bytes a few times before the
// caller unlinks it. this is best effort: journaling filesystems may
// keep old blocks around anyway.
func ShredFile( filename string ) error {

	fileInfo, err := os.Stat( filename )
	if err != nil {
		return err
	}

	buf := make( []byte, fileInfo.Size() )

	for i := 0; i < ShredingCount; i++ {
		if _, err := rand.Read( buf ); err != nil {
			return err
		}
		if err = os.WriteFile( filename, buf, 0660 ); err != nil {
			return err
		}
	}
	return nil
}
