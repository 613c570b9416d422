package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/geometry"
	"github.com/rlowe/pathtracer/pkg/material"
)

// MeshData is the raw (positions, indices, normals, UVs, per-face
// material id) tuple spec §6 specifies as the mesh-loader's output,
// mirrored on the teacher's PLYData shape but trimmed to what an
// OBJ-style loader actually produces.
type MeshData struct {
	Positions     []core.Vec3
	Normals       []core.Vec3 // empty if the file has none
	TexCoords     []core.Vec2 // empty if the file has none
	Indices       [][3]int    // one triple of position indices per triangle
	NormalIndices [][3]int    // parallel to Indices; -1 entries mean "missing"
	UVIndices     [][3]int    // parallel to Indices; -1 entries mean "missing"
	FaceMaterial  []int       // one material-group index per triangle
}

// LoadMesh parses a Wavefront-OBJ-shaped file into a MeshData. Missing
// normals/UVs on an individual vertex are recorded as -1 in the index
// arrays; ToTriangles resolves those to the spec-mandated defaults.
// A missing or unreadable file is a fatal scene-construction error
// (spec §4.K): the caller is expected to abort, not recover.
func LoadMesh(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer file.Close()

	data := &MeshData{}
	currentMaterial := 0
	materialNames := map[string]int{}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file line %d: %w", lineNo, err)
			}
			data.Positions = append(data.Positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file line %d: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, n)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh file line %d: %w", lineNo, err)
			}
			data.TexCoords = append(data.TexCoords, uv)
		case "usemtl":
			name := fields[1]
			id, ok := materialNames[name]
			if !ok {
				id = len(materialNames)
				materialNames[name] = id
			}
			currentMaterial = id
		case "f":
			if err := parseFace(data, fields[1:], currentMaterial); err != nil {
				return nil, fmt.Errorf("mesh file line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	return data, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func parseVec2(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(x, y), nil
}

// parseFace handles triangulated faces of "v", "v/vt", "v//vn", and
// "v/vt/vn" vertex references, fan-triangulating polygons with more
// than three vertices the way most OBJ exporters expect consumers to.
func parseFace(data *MeshData, fields []string, mat int) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	type vref struct{ v, vt, vn int }
	refs := make([]vref, len(fields))
	for i, f := range fields {
		parts := strings.Split(f, "/")
		v, err := parseOBJIndex(parts[0], len(data.Positions))
		if err != nil {
			return err
		}
		ref := vref{v: v, vt: -1, vn: -1}
		if len(parts) >= 2 && parts[1] != "" {
			vt, err := parseOBJIndex(parts[1], len(data.TexCoords))
			if err != nil {
				return err
			}
			ref.vt = vt
		}
		if len(parts) >= 3 && parts[2] != "" {
			vn, err := parseOBJIndex(parts[2], len(data.Normals))
			if err != nil {
				return err
			}
			ref.vn = vn
		}
		refs[i] = ref
	}

	for i := 1; i < len(refs)-1; i++ {
		a, b, c := refs[0], refs[i], refs[i+1]
		data.Indices = append(data.Indices, [3]int{a.v, b.v, c.v})
		data.NormalIndices = append(data.NormalIndices, [3]int{a.vn, b.vn, c.vn})
		data.UVIndices = append(data.UVIndices, [3]int{a.vt, b.vt, c.vt})
		data.FaceMaterial = append(data.FaceMaterial, mat)
	}
	return nil
}

// parseOBJIndex resolves a 1-based (or negative, relative-to-end) OBJ
// index into a 0-based index into a slice of length count.
func parseOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	if n < 0 {
		return count + n, nil
	}
	return n - 1, nil
}

// defaultNormal and defaultUV are the spec §6 fallbacks for vertices
// whose file omitted a normal/UV.
var defaultNormal = core.NewVec3(0, 1, 0)
var defaultUV = core.NewVec2(0, 0)

// ToTriangles converts the raw MeshData into Triangles, one per face,
// with one Material per face-material group. A group id that LoadMesh
// assigned via "usemtl" but that has no entry in materialsByGroup falls
// back to materialsByGroup[0].
func (m *MeshData) ToTriangles(materialsByGroup []material.Material) *geometry.List {
	list := geometry.NewList()

	for fi, idx := range m.Indices {
		p0, p1, p2 := m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]]

		mat := materialsByGroup[0]
		if g := m.FaceMaterial[fi]; g < len(materialsByGroup) {
			mat = materialsByGroup[g]
		}

		tri := geometry.NewTriangle(p0, p1, p2, mat)

		nIdx := m.NormalIndices[fi]
		normals := [3]core.Vec3{defaultNormal, defaultNormal, defaultNormal}
		for i, ni := range nIdx {
			if ni >= 0 && ni < len(m.Normals) {
				normals[i] = m.Normals[ni]
			}
		}
		tri.WithNormals(normals[0], normals[1], normals[2])

		uvIdx := m.UVIndices[fi]
		uvs := [3]core.Vec2{defaultUV, defaultUV, defaultUV}
		for i, ui := range uvIdx {
			if ui >= 0 && ui < len(m.TexCoords) {
				uvs[i] = m.TexCoords[ui]
			}
		}
		tri.WithUVs(uvs[0], uvs[1], uvs[2])

		list.Add(tri)
	}

	return list
}
