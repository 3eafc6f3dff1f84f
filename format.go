package vkcore

type Format int32

const (
	FORMAT_UNDEFINED                  Format = 0
	FORMAT_R4G4_UNORM_PACK8           Format = 1
	FORMAT_R4G4B4A4_UNORM_PACK16      Format = 2
	FORMAT_B4G4R4A4_UNORM_PACK16      Format = 3
	FORMAT_R5G6B5_UNORM_PACK16        Format = 4
	FORMAT_B5G6R5_UNORM_PACK16        Format = 5
	FORMAT_R5G5B5A1_UNORM_PACK16      Format = 6
	FORMAT_B5G5R5A1_UNORM_PACK16      Format = 7
	FORMAT_A1R5G5B5_UNORM_PACK16      Format = 8
	FORMAT_R8_UNORM                   Format = 9
	FORMAT_R8_SNORM                   Format = 10
	FORMAT_R8_USCALED                 Format = 11
	FORMAT_R8_SSCALED                 Format = 12
	FORMAT_R8_UINT                    Format = 13
	FORMAT_R8_SINT                    Format = 14
	FORMAT_R8_SRGB                    Format = 15
	FORMAT_R8G8_UNORM                 Format = 16
	FORMAT_R8G8_SNORM                 Format = 17
	FORMAT_R8G8_USCALED               Format = 18
	FORMAT_R8G8_SSCALED               Format = 19
	FORMAT_R8G8_UINT                  Format = 20
	FORMAT_R8G8_SINT                  Format = 21
	FORMAT_R8G8_SRGB                  Format = 22
	FORMAT_R8G8B8_UNORM               Format = 23
	FORMAT_R8G8B8_SNORM               Format = 24
	FORMAT_R8G8B8_USCALED             Format = 25
	FORMAT_R8G8B8_SSCALED             Format = 26
	FORMAT_R8G8B8_UINT                Format = 27
	FORMAT_R8G8B8_SINT                Format = 28
	FORMAT_R8G8B8_SRGB                Format = 29
	FORMAT_B8G8R8_UNORM               Format = 30
	FORMAT_B8G8R8_SNORM               Format = 31
	FORMAT_B8G8R8_USCALED             Format = 32
	FORMAT_B8G8R8_SSCALED             Format = 33
	FORMAT_B8G8R8_UINT                Format = 34
	FORMAT_B8G8R8_SINT                Format = 35
	FORMAT_B8G8R8_SRGB                Format = 36
	FORMAT_R8G8B8A8_UNORM             Format = 37
	FORMAT_R8G8B8A8_SNORM             Format = 38
	FORMAT_R8G8B8A8_USCALED           Format = 39
	FORMAT_R8G8B8A8_SSCALED           Format = 40
	FORMAT_R8G8B8A8_UINT              Format = 41
	FORMAT_R8G8B8A8_SINT              Format = 42
	FORMAT_R8G8B8A8_SRGB              Format = 43
	FORMAT_B8G8R8A8_UNORM             Format = 44
	FORMAT_B8G8R8A8_SNORM             Format = 45
	FORMAT_B8G8R8A8_USCALED           Format = 46
	FORMAT_B8G8R8A8_SSCALED           Format = 47
	FORMAT_B8G8R8A8_UINT              Format = 48
	FORMAT_B8G8R8A8_SINT              Format = 49
	FORMAT_B8G8R8A8_SRGB              Format = 50
	FORMAT_A8B8G8R8_UNORM_PACK32      Format = 51
	FORMAT_A8B8G8R8_SNORM_PACK32      Format = 52
	FORMAT_A8B8G8R8_USCALED_PACK32    Format = 53
	FORMAT_A8B8G8R8_SSCALED_PACK32    Format = 54
	FORMAT_A8B8G8R8_UINT_PACK32       Format = 55
	FORMAT_A8B8G8R8_SINT_PACK32       Format = 56
	FORMAT_A8B8G8R8_SRGB_PACK32       Format = 57
	FORMAT_A2R10G10B10_UNORM_PACK32   Format = 58
	FORMAT_A2R10G10B10_SNORM_PACK32   Format = 59
	FORMAT_A2R10G10B10_USCALED_PACK32 Format = 60
	FORMAT_A2R10G10B10_SSCALED_PACK32 Format = 61
	FORMAT_A2R10G10B10_UINT_PACK32    Format = 62
	FORMAT_A2R10G10B10_SINT_PACK32    Format = 63
	FORMAT_A2B10G10R10_UNORM_PACK32   Format = 64
	FORMAT_A2B10G10R10_SNORM_PACK32   Format = 65
	FORMAT_A2B10G10R10_USCALED_PACK32 Format = 66
	FORMAT_A2B10G10R10_SSCALED_PACK32 Format = 67
	FORMAT_A2B10G10R10_UINT_PACK32    Format = 68
	FORMAT_A2B10G10R10_SINT_PACK32    Format = 69
	FORMAT_R16_UNORM                  Format = 70
	FORMAT_R16_SNORM                  Format = 71
	FORMAT_R16_USCALED                Format = 72
	FORMAT_R16_SSCALED                Format = 73
	FORMAT_R16_UINT                   Format = 74
	FORMAT_R16_SINT                   Format = 75
	FORMAT_R16_SFLOAT                 Format = 76
	FORMAT_R16G16_UNORM               Format = 77
	FORMAT_R16G16_SNORM               Format = 78
	FORMAT_R16G16_USCALED             Format = 79
	FORMAT_R16G16_SSCALED             Format = 80
	FORMAT_R16G16_UINT                Format = 81
	FORMAT_R16G16_SINT                Format = 82
	FORMAT_R16G16_SFLOAT              Format = 83
	FORMAT_R16G16B16_UNORM            Format = 84
	FORMAT_R16G16B16_SNORM            Format = 85
	FORMAT_R16G16B16_USCALED          Format = 86
	FORMAT_R16G16B16_SSCALED          Format = 87
	FORMAT_R16G16B16_UINT             Format = 88
	FORMAT_R16G16B16_SINT             Format = 89
	FORMAT_R16G16B16_SFLOAT           Format = 90
	FORMAT_R16G16B16A16_UNORM         Format = 91
	FORMAT_R16G16B16A16_SNORM         Format = 92
	FORMAT_R16G16B16A16_USCALED       Format = 93
	FORMAT_R16G16B16A16_SSCALED       Format = 94
	FORMAT_R16G16B16A16_UINT          Format = 95
	FORMAT_R16G16B16A16_SINT          Format = 96
	FORMAT_R16G16B16A16_SFLOAT        Format = 97
	FORMAT_R32_UINT                   Format = 98
	FORMAT_R32_SINT                   Format = 99
	FORMAT_R32_SFLOAT                 Format = 100
	FORMAT_R32G32_UINT                Format = 101
	FORMAT_R32G32_SINT                Format = 102
	FORMAT_R32G32_SFLOAT              Format = 103
	FORMAT_R32G32B32_UINT             Format = 104
	FORMAT_R32G32B32_SINT             Format = 105
	FORMAT_R32G32B32_SFLOAT           Format = 106
	FORMAT_R32G32B32A32_UINT          Format = 107
	FORMAT_R32G32B32A32_SINT          Format = 108
	FORMAT_R32G32B32A32_SFLOAT        Format = 109
	FORMAT_R64_UINT                   Format = 110
	FORMAT_R64_SINT                   Format = 111
	FORMAT_R64_SFLOAT                 Format = 112
	FORMAT_R64G64_UINT                Format = 113
	FORMAT_R64G64_SINT                Format = 114
	FORMAT_R64G64_SFLOAT              Format = 115
	FORMAT_R64G64B64_UINT             Format = 116
	FORMAT_R64G64B64_SINT             Format = 117
	FORMAT_R64G64B64_SFLOAT           Format = 118
	FORMAT_R64G64B64A64_UINT          Format = 119
	FORMAT_R64G64B64A64_SINT          Format = 120
	FORMAT_R64G64B64A64_SFLOAT        Format = 121
	FORMAT_B10G11R11_UFLOAT_PACK32    Format = 122
	FORMAT_E5B9G9R9_UFLOAT_PACK32     Format = 123
	FORMAT_D16_UNORM                  Format = 124
	FORMAT_X8_D24_UNORM_PACK32        Format = 125
	FORMAT_D32_SFLOAT                 Format = 126
	FORMAT_S8_UINT                    Format = 127
	FORMAT_D16_UNORM_S8_UINT          Format = 128
	FORMAT_D24_UNORM_S8_UINT          Format = 129
	FORMAT_D32_SFLOAT_S8_UINT         Format = 130
	FORMAT_BC1_RGB_UNORM_BLOCK        Format = 131
	FORMAT_BC1_RGB_SRGB_BLOCK         Format = 132
	FORMAT_BC1_RGBA_UNORM_BLOCK       Format = 133
	FORMAT_BC1_RGBA_SRGB_BLOCK        Format = 134
	FORMAT_BC2_UNORM_BLOCK            Format = 135
	FORMAT_BC2_SRGB_BLOCK             Format = 136
	FORMAT_BC3_UNORM_BLOCK            Format = 137
	FORMAT_BC3_SRGB_BLOCK             Format = 138
	FORMAT_BC4_UNORM_BLOCK            Format = 139
	FORMAT_BC4_SNORM_BLOCK            Format = 140
	FORMAT_BC5_UNORM_BLOCK            Format = 141
	FORMAT_BC5_SNORM_BLOCK            Format = 142
	FORMAT_BC6H_UFLOAT_BLOCK          Format = 143
	FORMAT_BC6H_SFLOAT_BLOCK          Format = 144
	FORMAT_BC7_UNORM_BLOCK            Format = 145
	FORMAT_BC7_SRGB_BLOCK             Format = 146
	FORMAT_ETC2_R8G8B8_UNORM_BLOCK    Format = 147
	FORMAT_ETC2_R8G8B8_SRGB_BLOCK     Format = 148
	FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK  Format = 149
	FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK   Format = 150
	FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK  Format = 151
	FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK   Format = 152
	FORMAT_EAC_R11_UNORM_BLOCK        Format = 153
	FORMAT_EAC_R11_SNORM_BLOCK        Format = 154
	FORMAT_EAC_R11G11_UNORM_BLOCK     Format = 155
	FORMAT_EAC_R11G11_SNORM_BLOCK     Format = 156
	FORMAT_ASTC_4x4_UNORM_BLOCK       Format = 157
	FORMAT_ASTC_4x4_SRGB_BLOCK        Format = 158
	FORMAT_ASTC_5x4_UNORM_BLOCK       Format = 159
	FORMAT_ASTC_5x4_SRGB_BLOCK        Format = 160
	FORMAT_ASTC_5x5_UNORM_BLOCK       Format = 161
	FORMAT_ASTC_5x5_SRGB_BLOCK        Format = 162
	FORMAT_ASTC_6x5_UNORM_BLOCK       Format = 163
	FORMAT_ASTC_6x5_SRGB_BLOCK        Format = 164
	FORMAT_ASTC_6x6_UNORM_BLOCK       Format = 165
	FORMAT_ASTC_6x6_SRGB_BLOCK        Format = 166
	FORMAT_ASTC_8x5_UNORM_BLOCK       Format = 167
	FORMAT_ASTC_8x5_SRGB_BLOCK        Format = 168
	FORMAT_ASTC_8x6_UNORM_BLOCK       Format = 169
	FORMAT_ASTC_8x6_SRGB_BLOCK        Format = 170
	FORMAT_ASTC_8x8_UNORM_BLOCK       Format = 171
	FORMAT_ASTC_8x8_SRGB_BLOCK        Format = 172
	FORMAT_ASTC_10x5_UNORM_BLOCK      Format = 173
	FORMAT_ASTC_10x5_SRGB_BLOCK       Format = 174
	FORMAT_ASTC_10x6_UNORM_BLOCK      Format = 175
	FORMAT_ASTC_10x6_SRGB_BLOCK       Format = 176
	FORMAT_ASTC_10x8_UNORM_BLOCK      Format = 177
	FORMAT_ASTC_10x8_SRGB_BLOCK       Format = 178
	FORMAT_ASTC_10x10_UNORM_BLOCK     Format = 179
	FORMAT_ASTC_10x10_SRGB_BLOCK      Format = 180
	FORMAT_ASTC_12x10_UNORM_BLOCK     Format = 181
	FORMAT_ASTC_12x10_SRGB_BLOCK      Format = 182
	FORMAT_ASTC_12x12_UNORM_BLOCK     Format = 183
	FORMAT_ASTC_12x12_SRGB_BLOCK      Format = 184
)

// FORMAT_RANGE_SIZE is the number of core formats; valid core values are 0 through FORMAT_RANGE_SIZE-1.
const FORMAT_RANGE_SIZE = 185
