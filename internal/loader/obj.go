package loader

import (
	"GopherBloom/internal/logger"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var ErrIndexOutOfRange = errors.New("loader: face index out of range")

// LoadOBJ reads the positions and faces of a Wavefront OBJ file. Texture
// coordinates, normals and materials are ignored.
func LoadOBJ(path string) (*Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	g, err := ParseOBJ(name, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Info("Model loaded",
		zap.String("path", path),
		zap.Int("triangles", g.Triangles()))
	return g, nil
}

func ParseOBJ(name string, r io.Reader) (*Geometry, error) {
	var vertices []mgl32.Vec3
	var indices []int32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			v, err := parseVertex(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vertices = append(vertices, v)
		case "f":
			face, err := parseFace(parts[1:], len(vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			indices = append(indices, face...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, ErrEmptyGeometry
	}
	return expand(name, vertices, indices), nil
}

func parseVertex(parts []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(parts) < 3 {
		return v, fmt.Errorf("vertex needs 3 coordinates, got %d", len(parts))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return v, fmt.Errorf("invalid vertex value %v: %w", parts[i], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFace returns the zero-based position indices of a face, triangulated
// as a fan from its first corner. Negative indices count back from the last
// vertex read so far.
func parseFace(parts []string, count int) ([]int32, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs 3 corners, got %d", len(parts))
	}
	corners := make([]int32, 0, len(parts))
	for _, part := range parts {
		field := part
		if slash := strings.IndexByte(part, '/'); slash >= 0 {
			field = part[:slash]
		}
		idx, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %v: %w", field, err)
		}
		switch {
		case idx > 0:
			idx-- // .obj indices start at 1
		case idx < 0:
			idx += int64(count)
		default:
			return nil, fmt.Errorf("index 0: %w", ErrIndexOutOfRange)
		}
		if idx < 0 || idx >= int64(count) {
			return nil, fmt.Errorf("index %s: %w", field, ErrIndexOutOfRange)
		}
		corners = append(corners, int32(idx))
	}

	if len(corners) > 4 {
		logger.Log.Debug("Fan triangulating polygon", zap.Int("vertexCount", len(corners)))
	}
	tris := make([]int32, 0, (len(corners)-2)*3)
	for i := 1; i < len(corners)-1; i++ {
		tris = append(tris, corners[0], corners[i], corners[i+1])
	}
	return tris, nil
}
