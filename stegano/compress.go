package stegano
import (
	"io"
	"bytes"

	"github.com/klauspost/compress/zlib"
)

func compressBody( data []byte ) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel( &buf, zlib.BestCompression )
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write( data ); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressBody( data []byte ) ([]byte, error) {
	zr, err := zlib.NewReader( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy( &out, zr ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
